package shopify

import "fmt"

// defaultRetryAfterSeconds applies when Shopify omits the Retry-After header.
const defaultRetryAfterSeconds = 60

// AuthenticationError reports a 401 or 403 from the Admin API. It is never
// retryable; the tenant's token or scopes are wrong.
type AuthenticationError struct {
	Message string
	Status  int
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// RateLimitError reports a 429. RetryAfter carries the platform's wait hint
// in seconds; callers own the backoff, this layer never retries.
type RateLimitError struct {
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %d seconds", e.RetryAfter)
}

// APIError reports any other non-2xx response. Retryable follows the 5xx
// convention and is advisory only.
type APIError struct {
	Message   string
	Status    int
	Retryable bool
}

func (e *APIError) Error() string {
	return e.Message
}

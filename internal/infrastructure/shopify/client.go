package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/domain"
)

// Observer receives one sample per upstream round trip.
type Observer func(method string, status int, elapsed time.Duration)

// ClientFactory builds a tenant client from per-request credentials.
type ClientFactory func(creds domain.Credentials) *Client

// Client issues authenticated Admin REST calls for a single tenant. It is
// constructed per request from the caller's credentials and holds no state
// shared across invocations; concurrent calls are fully independent.
type Client struct {
	creds   domain.Credentials
	http    *http.Client
	logger  zerolog.Logger
	observe Observer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithObserver attaches a metrics hook.
func WithObserver(observe Observer) Option {
	return func(c *Client) { c.observe = observe }
}

// NewClient creates a tenant client. The API version is defaulted here;
// credential validation happens at the resolution boundary.
func NewClient(creds domain.Credentials, opts ...Option) *Client {
	c := &Client{
		creds:  creds.WithDefaults(),
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is the outcome of a successful round trip. Data holds the
// camelized payload and is nil for 204 responses, which keeps "no content"
// distinguishable from a 200 carrying an empty JSON object.
type Response struct {
	Status int
	Header http.Header
	Data   any
}

// NoContent reports whether the platform answered without a body.
func (r *Response) NoContent() bool {
	return r.Data == nil
}

// Get issues a GET with optional internal-cased query options.
func (c *Client) Get(ctx context.Context, path string, query map[string]any) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, nil, body)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, nil, body)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do performs one authenticated round trip. The body is snake-cased before
// marshaling; the response payload is camelized after decoding. Transport
// failures surface as wrapped generic errors, platform failures as the typed
// taxonomy in errors.go. No retries happen at this layer.
func (c *Client) Do(ctx context.Context, method, path string, query map[string]any, body any) (*Response, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(snakeKeys(body))
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.creds.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.observe != nil {
		c.observe(method, res.StatusCode, time.Since(start))
	}
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Msg("Shopify API request completed")

	if err := statusError(res.StatusCode, res.Header, payload); err != nil {
		return nil, err
	}

	out := &Response{Status: res.StatusCode, Header: res.Header}
	if res.StatusCode == http.StatusNoContent || len(payload) == 0 {
		return out, nil
	}

	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	out.Data = camelizeKeys(decoded)
	return out, nil
}

func (c *Client) endpoint(path string, query map[string]any) string {
	u := fmt.Sprintf("%s/admin/api/%s/%s", baseURL(c.creds.ShopDomain), c.creds.APIVersion, strings.TrimPrefix(path, "/"))
	if q := buildQuery(query); q != "" {
		u += "?" + q
	}
	return u
}

// baseURL adds the https scheme when the stored domain carries none.
func baseURL(shopDomain string) string {
	if !strings.HasPrefix(shopDomain, "https://") && !strings.HasPrefix(shopDomain, "http://") {
		return "https://" + shopDomain
	}
	return shopDomain
}

// statusError maps the platform's status codes onto the error taxonomy.
// First match wins; 2xx falls through to nil.
func statusError(status int, header http.Header, body []byte) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfterSeconds(header.Get("Retry-After"))}
	case status == http.StatusUnauthorized:
		return &AuthenticationError{Message: "invalid access token", Status: status}
	case status == http.StatusForbidden:
		return &AuthenticationError{Message: "access denied / insufficient scope", Status: status}
	case status == http.StatusNotFound:
		return &APIError{Message: "resource not found", Status: status}
	case status < 200 || status > 299:
		return &APIError{Message: errorMessage(status, body), Status: status, Retryable: status >= 500}
	}
	return nil
}

// errorMessage pulls Shopify's errors field out of the body when there is
// one, stringifying structured values compactly.
func errorMessage(status int, body []byte) string {
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err == nil {
		if raw, ok := decoded["errors"]; ok && raw != nil {
			if s, ok := raw.(string); ok {
				return s
			}
			if encoded, err := json.Marshal(raw); err == nil {
				return string(encoded)
			}
		}
	}
	return fmt.Sprintf("API error: %d", status)
}

func retryAfterSeconds(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultRetryAfterSeconds
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	// Shopify emits fractional seconds such as "2.0".
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(math.Ceil(f))
	}
	return defaultRetryAfterSeconds
}

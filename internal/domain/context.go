package domain

import "context"

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const (
	integrationKeyContextKey contextKey = "integration_key"
	credentialsContextKey    contextKey = "credentials"
)

// WithIntegrationKey returns a context carrying the caller's integration key.
func WithIntegrationKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, integrationKeyContextKey, key)
}

// GetIntegrationKeyFromContext extracts the integration key, or "" when absent.
func GetIntegrationKeyFromContext(ctx context.Context) string {
	if key, ok := ctx.Value(integrationKeyContextKey).(string); ok {
		return key
	}
	return ""
}

// WithCredentials returns a context carrying direct per-request credentials.
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsContextKey, creds)
}

// GetCredentialsFromContext extracts direct credentials when present.
func GetCredentialsFromContext(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsContextKey).(Credentials)
	return creds, ok
}

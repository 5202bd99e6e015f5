package ports

import (
	"context"
	"time"

	"shopify-mcp-layer/internal/domain"
)

// SessionStore holds OAuth install sessions for the duration of the handshake.
type SessionStore interface {
	// Save stores a session under its state nonce with a TTL
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error

	// Consume retrieves and removes a session; nil when not found or expired
	Consume(ctx context.Context, state string) (*domain.Session, error)
}

// Encryptor protects access tokens at rest.
type Encryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// EventBus fans verified webhook deliveries out to interested consumers.
type EventBus interface {
	// Publish broadcasts one event
	Publish(ctx context.Context, event *domain.WebhookEvent) error

	// Subscribe dispatches incoming events to handler until ctx is cancelled
	Subscribe(ctx context.Context, handler func(ctx context.Context, event *domain.WebhookEvent)) error
}

// Package redisstore keeps OAuth install sessions in Redis. The state nonce
// is the key, the TTL bounds the handshake window, and consumption is a
// GETDEL so a nonce can never authorize two callbacks.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/domain"
	"shopify-mcp-layer/internal/ports"
)

const sessionKeyPrefix = "oauth:session:"

// SessionStore implements ports.SessionStore on Redis.
type SessionStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewSessionStore creates a session store on an existing Redis client.
func NewSessionStore(client *redis.Client, logger zerolog.Logger) *SessionStore {
	return &SessionStore{client: client, logger: logger}
}

var _ ports.SessionStore = (*SessionStore)(nil)

// Save stores the session under its state nonce for the handshake window.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	encoded, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.State, encoded, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.logger.Debug().Str("shop", session.Shop).Msg("OAuth session saved")
	return nil
}

// Consume retrieves and deletes the session in one step. Unknown or expired
// nonces return nil without error; the caller decides how to refuse.
func (s *SessionStore) Consume(ctx context.Context, state string) (*domain.Session, error) {
	encoded, err := s.client.GetDel(ctx, sessionKeyPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to consume session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(encoded), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Session represents an OAuth install in progress, keyed by its state nonce.
type Session struct {
	State     string    `json:"state"`
	Shop      string    `json:"shop"`
	Scopes    []string  `json:"scopes"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewOAuthState generates the CSRF nonce for an install handshake.
func NewOAuthState() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

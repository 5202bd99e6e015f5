package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Integration binds an integration key to one Shopify shop's stored
// credentials. This allows apps to authenticate with just the key instead of
// sending raw shop credentials on every request. The access token is
// encrypted before it reaches the store.
type Integration struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	ShopDomain  string    `json:"shop_domain"`
	AccessToken string    `json:"-"`
	APIVersion  string    `json:"api_version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewIntegrationKey generates a 32-byte random key, hex encoded.
func NewIntegrationKey() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate integration key: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

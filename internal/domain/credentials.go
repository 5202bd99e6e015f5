package domain

import (
	"fmt"
	"strings"
)

// DefaultAPIVersion is the Admin API version used when a tenant does not pin one.
const DefaultAPIVersion = "2024-01"

// Credentials identifies one Shopify store for the duration of a single call.
// They are constructed per request from headers or environment and are never
// persisted by the request path itself.
type Credentials struct {
	ShopDomain  string `json:"shop_domain"`
	AccessToken string `json:"access_token"`
	APIVersion  string `json:"api_version"`
}

// Validate checks that the credentials are usable for an API call.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.ShopDomain) == "" {
		return fmt.Errorf("shop domain is required")
	}
	if strings.TrimSpace(c.AccessToken) == "" {
		return fmt.Errorf("access token is required")
	}
	return nil
}

// WithDefaults returns a copy with the API version filled in when empty.
func (c Credentials) WithDefaults() Credentials {
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	return c
}

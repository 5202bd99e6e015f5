package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"read_products", "write_products", "read_orders", "write_orders"}, cfg.OAuthScopes)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", TransportHTTP)
	t.Setenv("PORT", "9090")
	t.Setenv("SHOPIFY_OAUTH_SCOPES", "read_products, read_themes,")
	t.Setenv("SHOPIFY_SHOP_DOMAIN", "demo.myshopify.com")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "shpat_test")

	cfg := Load()

	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"read_products", "read_themes"}, cfg.OAuthScopes)
	assert.Equal(t, "demo.myshopify.com", cfg.DefaultCredentials.ShopDomain)
	assert.NoError(t, cfg.DefaultCredentials.Validate())
}

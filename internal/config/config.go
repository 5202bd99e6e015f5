// Package config reads the service configuration from the environment.
// godotenv is loaded tolerantly in main before Load runs; every value has a
// default suitable for local development except the secrets, whose absence
// is checked where they are needed (HTTP transport fatals, stdio does not).
package config

import (
	"os"
	"strings"

	"shopify-mcp-layer/internal/domain"
)

// Transport selects how the MCP server is exposed.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config carries everything main needs to wire the service.
type Config struct {
	Transport string
	Port      string
	AppURL    string

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string

	EncryptionKey string

	// Shopify app credentials for the OAuth install flow and webhook HMAC
	// verification. Empty disables those routes.
	ShopifyAPIKey    string
	ShopifyAPISecret string
	OAuthScopes      []string

	// Default tenant credentials, used by the stdio transport when the
	// caller attaches none. Optional for HTTP.
	DefaultCredentials domain.Credentials
}

// Load reads the environment, applying defaults.
func Load() Config {
	return Config{
		Transport:     getenv("MCP_TRANSPORT", TransportStdio),
		Port:          getenv("PORT", "8080"),
		AppURL:        getenv("APP_URL", "http://localhost:8080"),
		MongoURI:      getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenv("MONGODB_DATABASE", "shopify_mcp"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		EncryptionKey: os.Getenv("ENCRYPTION_KEY"),

		ShopifyAPIKey:    os.Getenv("SHOPIFY_API_KEY"),
		ShopifyAPISecret: os.Getenv("SHOPIFY_API_SECRET"),
		OAuthScopes:      splitScopes(getenv("SHOPIFY_OAUTH_SCOPES", "read_products,write_products,read_orders,write_orders")),

		DefaultCredentials: domain.Credentials{
			ShopDomain:  os.Getenv("SHOPIFY_SHOP_DOMAIN"),
			AccessToken: os.Getenv("SHOPIFY_ACCESS_TOKEN"),
			APIVersion:  os.Getenv("SHOPIFY_API_VERSION"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitScopes(raw string) []string {
	var scopes []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}
	return scopes
}

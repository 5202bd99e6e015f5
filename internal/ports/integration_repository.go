package ports

import (
	"context"

	"shopify-mcp-layer/internal/domain"
)

// IntegrationRepository defines the interface for integration persistence
type IntegrationRepository interface {
	// Create creates a new integration
	Create(ctx context.Context, integration *domain.Integration) error

	// GetByKey retrieves an integration by its key; nil when not found
	GetByKey(ctx context.Context, key string) (*domain.Integration, error)

	// GetByShop retrieves the newest integration for a shop domain; nil when not found
	GetByShop(ctx context.Context, shopDomain string) (*domain.Integration, error)

	// Delete deletes an integration by key
	Delete(ctx context.Context, key string) error

	// DeleteByShop removes every integration for a shop, returning the count
	DeleteByShop(ctx context.Context, shopDomain string) (int64, error)
}

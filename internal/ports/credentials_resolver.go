package ports

import (
	"context"

	"shopify-mcp-layer/internal/domain"
)

// CredentialsResolver produces the tenant credentials for one request,
// whatever their source: stored integration, request headers, or defaults.
type CredentialsResolver interface {
	Resolve(ctx context.Context) (domain.Credentials, error)
}

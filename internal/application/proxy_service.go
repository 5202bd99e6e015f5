package application

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/infrastructure/shopify"
	"shopify-mcp-layer/internal/ports"
)

// ProxyService forwards raw REST calls through the tenant-authenticated
// executor. It exists so operators can hit any Admin endpoint with curl and
// an integration key, with the same error taxonomy and internal-cased
// responses the tools produce.
type ProxyService struct {
	resolver ports.CredentialsResolver
	clients  shopify.ClientFactory
	logger   zerolog.Logger
}

// NewProxyService creates a new proxy service.
func NewProxyService(resolver ports.CredentialsResolver, clients shopify.ClientFactory, logger zerolog.Logger) *ProxyService {
	return &ProxyService{resolver: resolver, clients: clients, logger: logger}
}

// Forward resolves the caller's credentials and replays the call upstream.
// Query keys and body keys already in wire casing pass through unchanged;
// internal-cased input is converted like any tool call.
func (s *ProxyService) Forward(ctx context.Context, method, path string, query url.Values, body []byte) (*shopify.Response, error) {
	creds, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	var payload any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("request body is not valid JSON: %w", err)
		}
	}

	client := s.clients(creds)
	res, err := client.Do(ctx, method, path, queryToOpts(query), payload)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.Status).
		Msg("Proxied Admin API request")
	return res, nil
}

// queryToOpts flattens url.Values into the executor's option map.
// Multi-valued parameters become comma-joined, matching how the query
// builder renders arrays.
func queryToOpts(query url.Values) map[string]any {
	if len(query) == 0 {
		return nil
	}
	opts := make(map[string]any, len(query))
	for key, values := range query {
		if len(values) == 1 {
			opts[key] = values[0]
			continue
		}
		joined := make([]any, len(values))
		for i, v := range values {
			joined[i] = v
		}
		opts[key] = joined
	}
	return opts
}

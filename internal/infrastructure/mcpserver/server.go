// Package mcpserver assembles the MCP server from the tool registry and
// adapts every handler onto the uniform response envelope. No error escapes
// this boundary: whatever a tool or the upstream platform does, the caller
// receives a well-formed result with isError set at worst.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/application"
	"shopify-mcp-layer/internal/domain"
	"shopify-mcp-layer/internal/infrastructure/shopify"
	"shopify-mcp-layer/internal/ports"
	"shopify-mcp-layer/internal/tools"
)

const serverName = "shopify-mcp-layer"

const instructions = `Tools for the Shopify Admin REST API. Entity fields use camelCase
in both arguments and results. List tools return {items, count, hasMore,
nextCursor}; hasMore is a heuristic and nextCursor, when present, is the
authoritative continuation token. Rate-limited calls fail with a
retryAfterSeconds hint; wait that long before retrying.`

// Deps carries what the tool adapter needs per call.
type Deps struct {
	Resolver ports.CredentialsResolver
	Clients  shopify.ClientFactory
	Observe  func(tool, outcome string, elapsed time.Duration)
	Logger   zerolog.Logger
}

// New builds the MCP server with every registry tool attached.
func New(registry *tools.Registry, version string, deps Deps) *server.MCPServer {
	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	for _, tool := range registry.Tools() {
		s.AddTool(tool.Definition, toolHandler(tool, deps))
	}
	return s
}

// ServeStdio runs the server over stdin/stdout. Credentials come from the
// environment defaults attached to every request context.
func ServeStdio(s *server.MCPServer, defaults domain.Credentials) error {
	return server.ServeStdio(s, server.WithStdioContextFunc(stdioContextFunc(defaults)))
}

// NewHTTPHandler exposes the server over the streamable HTTP transport,
// with credentials drawn from request headers.
func NewHTTPHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s, server.WithHTTPContextFunc(httpContextFunc))
}

// toolHandler adapts one registry tool onto mcp-go's handler signature,
// resolving tenant credentials and mapping every failure onto the envelope.
func toolHandler(tool tools.Tool, deps Deps) server.ToolHandlerFunc {
	name := tool.Definition.Name
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		creds, err := deps.Resolver.Resolve(ctx)
		if err != nil {
			return fail(name, err, start, deps), nil
		}

		payload, err := tool.Handle(ctx, deps.Clients(creds), request.GetArguments())
		if err != nil {
			return fail(name, err, start, deps), nil
		}

		if deps.Observe != nil {
			deps.Observe(name, "success", time.Since(start))
		}
		return mcp.NewToolResultText(payload), nil
	}
}

func fail(name string, err error, start time.Time, deps Deps) *mcp.CallToolResult {
	if deps.Observe != nil {
		deps.Observe(name, "error", time.Since(start))
	}
	deps.Logger.Warn().Err(err).Str("tool", name).Msg("Tool call failed")
	return mcp.NewToolResultError(failureEnvelope(err))
}

// failureDetails carries the diagnostic part of the failure envelope.
type failureDetails struct {
	Type              string `json:"type"`
	Status            int    `json:"status,omitempty"`
	Retryable         *bool  `json:"retryable,omitempty"`
	RetryAfterSeconds int    `json:"retryAfterSeconds,omitempty"`
}

// failureEnvelope renders any error as {"error": ..., "details": ...},
// classifying the transport taxonomy so callers can program against it.
func failureEnvelope(err error) string {
	details := classify(err)
	envelope := map[string]any{
		"error":   err.Error(),
		"details": details,
	}
	encoded, marshalErr := json.Marshal(envelope)
	if marshalErr != nil {
		return `{"error":"internal error","details":{"type":"internal"}}`
	}
	return string(encoded)
}

func classify(err error) failureDetails {
	var rateLimited *shopify.RateLimitError
	if errors.As(err, &rateLimited) {
		return failureDetails{
			Type:              "rate_limited",
			Status:            http.StatusTooManyRequests,
			Retryable:         boolPtr(true),
			RetryAfterSeconds: rateLimited.RetryAfter,
		}
	}

	var authFailed *shopify.AuthenticationError
	if errors.As(err, &authFailed) {
		return failureDetails{Type: "authentication", Status: authFailed.Status, Retryable: boolPtr(false)}
	}

	var apiErr *shopify.APIError
	if errors.As(err, &apiErr) {
		return failureDetails{Type: "api_error", Status: apiErr.Status, Retryable: boolPtr(apiErr.Retryable)}
	}

	switch {
	case errors.Is(err, tools.ErrInvalidArguments):
		return failureDetails{Type: "invalid_arguments"}
	case errors.Is(err, application.ErrMissingCredentials),
		errors.Is(err, application.ErrIntegrationNotFound):
		return failureDetails{Type: "missing_credentials"}
	}
	return failureDetails{Type: "internal"}
}

func boolPtr(b bool) *bool { return &b }

// stdioContextFunc attaches the environment's default credentials to every
// stdio request. Validation happens at resolution, not here.
func stdioContextFunc(defaults domain.Credentials) server.StdioContextFunc {
	return func(ctx context.Context) context.Context {
		if defaults.ShopDomain != "" || defaults.AccessToken != "" {
			ctx = domain.WithCredentials(ctx, defaults)
		}
		return ctx
	}
}

// httpContextFunc lifts tenant headers into the context. The integration
// key wins over direct credentials, matching the REST middleware.
func httpContextFunc(ctx context.Context, r *http.Request) context.Context {
	if key := r.Header.Get("X-Integration-Key"); key != "" {
		return domain.WithIntegrationKey(ctx, key)
	}
	creds := domain.Credentials{
		ShopDomain:  r.Header.Get("X-Shopify-Shop-Domain"),
		AccessToken: r.Header.Get("X-Shopify-Access-Token"),
		APIVersion:  r.Header.Get("X-Shopify-Api-Version"),
	}
	if creds.ShopDomain != "" || creds.AccessToken != "" {
		return domain.WithCredentials(ctx, creds)
	}
	return ctx
}

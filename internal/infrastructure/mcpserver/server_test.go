package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopify-mcp-layer/internal/application"
	"shopify-mcp-layer/internal/domain"
	"shopify-mcp-layer/internal/infrastructure/shopify"
	"shopify-mcp-layer/internal/tools"
)

type stubResolver struct {
	creds domain.Credentials
	err   error
}

func (s stubResolver) Resolve(ctx context.Context) (domain.Credentials, error) {
	return s.creds, s.err
}

func testDeps(resolver stubResolver) Deps {
	return Deps{
		Resolver: resolver,
		Clients:  func(creds domain.Credentials) *shopify.Client { return shopify.NewClient(creds) },
		Logger:   zerolog.Nop(),
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestToolHandlerSuccess(t *testing.T) {
	tool := tools.Tool{
		Definition: mcp.NewTool("probe"),
		Handle: func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
			return "payload", nil
		},
	}

	var observed string
	deps := testDeps(stubResolver{creds: domain.Credentials{ShopDomain: "demo.myshopify.com", AccessToken: "t"}})
	deps.Observe = func(tool, outcome string, elapsed time.Duration) { observed = tool + ":" + outcome }

	result, err := toolHandler(tool, deps)(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "payload", resultText(t, result))
	assert.Equal(t, "probe:success", observed)
}

func TestToolHandlerWrapsUpstreamErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(ts.Close)

	tool := tools.Tool{
		Definition: mcp.NewTool("probe"),
		Handle: func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
			_, err := client.Get(ctx, "shop.json", nil)
			return "", err
		},
	}
	deps := testDeps(stubResolver{creds: domain.Credentials{ShopDomain: ts.URL, AccessToken: "t"}})

	result, err := toolHandler(tool, deps)(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, result.IsError)

	var envelope struct {
		Error   string         `json:"error"`
		Details failureDetails `json:"details"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &envelope))
	assert.Equal(t, "rate_limited", envelope.Details.Type)
	assert.Equal(t, 30, envelope.Details.RetryAfterSeconds)
	require.NotNil(t, envelope.Details.Retryable)
	assert.True(t, *envelope.Details.Retryable)
}

func TestToolHandlerMissingCredentials(t *testing.T) {
	tool := tools.Tool{
		Definition: mcp.NewTool("probe"),
		Handle: func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
			t.Fatal("handler must not run without credentials")
			return "", nil
		},
	}
	deps := testDeps(stubResolver{err: application.ErrMissingCredentials})

	result, err := toolHandler(tool, deps)(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, result.IsError)

	var envelope struct {
		Details failureDetails `json:"details"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &envelope))
	assert.Equal(t, "missing_credentials", envelope.Details.Type)
}

func TestClassifyTaxonomy(t *testing.T) {
	auth := classify(&shopify.AuthenticationError{Message: "invalid access token", Status: 401})
	assert.Equal(t, "authentication", auth.Type)
	assert.Equal(t, 401, auth.Status)

	api := classify(&shopify.APIError{Message: "boom", Status: 502, Retryable: true})
	assert.Equal(t, "api_error", api.Type)
	require.NotNil(t, api.Retryable)
	assert.True(t, *api.Retryable)

	invalid := classify(tools.ErrInvalidArguments)
	assert.Equal(t, "invalid_arguments", invalid.Type)

	unknown := classify(assert.AnError)
	assert.Equal(t, "internal", unknown.Type)
}

func TestHTTPContextFuncPrefersIntegrationKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("X-Integration-Key", "key-1")
	req.Header.Set("X-Shopify-Access-Token", "token")
	req.Header.Set("X-Shopify-Shop-Domain", "demo.myshopify.com")

	ctx := httpContextFunc(context.Background(), req)
	assert.Equal(t, "key-1", domain.GetIntegrationKeyFromContext(ctx))
	_, ok := domain.GetCredentialsFromContext(ctx)
	assert.False(t, ok)
}

func TestHTTPContextFuncDirectCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("X-Shopify-Access-Token", "token")
	req.Header.Set("X-Shopify-Shop-Domain", "demo.myshopify.com")
	req.Header.Set("X-Shopify-Api-Version", "2024-04")

	ctx := httpContextFunc(context.Background(), req)
	creds, ok := domain.GetCredentialsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "demo.myshopify.com", creds.ShopDomain)
	assert.Equal(t, "2024-04", creds.APIVersion)
}

func TestNewRegistersEveryTool(t *testing.T) {
	registry := tools.NewRegistry()
	s := New(registry, "test", testDeps(stubResolver{}))
	assert.NotNil(t, s)
}

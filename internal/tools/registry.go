// Package tools declares the MCP tool surface: one schema and handler per
// Admin API operation. The registry is built once at startup and handed to
// the server boundary; there is no ambient global.
package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/infrastructure/shopify"
)

// Handler executes one tool call against a per-request tenant client and
// returns the textual payload for the response envelope.
type Handler func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error)

// Tool pairs an argument schema with its handler.
type Tool struct {
	Definition mcp.Tool
	Handle     Handler
}

// Registry maps tool names to their schema/handler pairs, preserving
// registration order for deterministic listing.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry builds the full tool surface.
func NewRegistry() *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	registerProductTools(r)
	registerOrderTools(r)
	registerDraftOrderTools(r)
	registerCustomerTools(r)
	registerInventoryTools(r)
	registerLocationTools(r)
	registerFulfillmentTools(r)
	registerWebhookTools(r)
	registerThemeTools(r)
	registerCollectionTools(r)
	registerDiscountTools(r)
	registerMetafieldTools(r)
	registerShopTools(r)
	return r
}

func (r *Registry) add(def mcp.Tool, handle Handler) {
	if _, exists := r.tools[def.Name]; exists {
		panic(fmt.Sprintf("duplicate tool registration: %s", def.Name))
	}
	r.order = append(r.order, def.Name)
	r.tools[def.Name] = Tool{Definition: def, Handle: handle}
}

// Tools returns every registered tool in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Get looks a tool up by name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}

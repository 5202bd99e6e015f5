// Package format renders tool results for model consumption. Every tool
// offers the same two modes: pretty JSON for lossless detail and Markdown
// tables for cheap scanning.
package format

import (
	"encoding/json"
	"fmt"
	"strconv"

	"shopify-mcp-layer/internal/infrastructure/shopify"
)

// Mode selects the output rendering.
type Mode string

const (
	ModeJSON     Mode = "json"
	ModeMarkdown Mode = "markdown"
)

// ParseMode maps a tool argument onto a Mode, defaulting to JSON for
// anything unrecognized.
func ParseMode(s string) Mode {
	if s == string(ModeMarkdown) {
		return ModeMarkdown
	}
	return ModeJSON
}

// Entity keys the Markdown renderer table. Unknown entities fall back to a
// generic table derived from the data itself.
type Entity string

const (
	Products        Entity = "products"
	Orders          Entity = "orders"
	DraftOrders     Entity = "draftOrders"
	Customers       Entity = "customers"
	InventoryItems  Entity = "inventoryItems"
	InventoryLevels Entity = "inventoryLevels"
	Locations       Entity = "locations"
	Fulfillments    Entity = "fulfillments"
	Webhooks        Entity = "webhooks"
	Themes          Entity = "themes"
	Assets          Entity = "assets"
	Collections     Entity = "collections"
	PriceRules      Entity = "priceRules"
	DiscountCodes   Entity = "discountCodes"
	Metafields      Entity = "metafields"
	Policies        Entity = "policies"
)

// Page renders a result page in the requested mode.
func Page(page *shopify.Page, mode Mode, entity Entity) (string, error) {
	if mode == ModeMarkdown {
		return pageMarkdown(page, entity), nil
	}
	return JSON(page)
}

// Item renders a single object in the requested mode.
func Item(item any, mode Mode, entity Entity) (string, error) {
	if mode == ModeMarkdown {
		return itemMarkdown(item, entity), nil
	}
	return JSON(item)
}

// JSON pretty-prints any value with two-space indentation.
func JSON(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(out), nil
}

// str pulls a field as display text, empty when absent or null.
func str(item map[string]any, key string) string {
	v, ok := item[key]
	if !ok || v == nil {
		return ""
	}
	return display(v)
}

// display renders a scalar. JSON numbers print without an exponent or
// trailing fraction so ids stay readable.
func display(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

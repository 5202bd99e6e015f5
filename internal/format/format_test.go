package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeJSON, ParseMode(""))
	assert.Equal(t, ModeJSON, ParseMode("json"))
	assert.Equal(t, ModeMarkdown, ParseMode("markdown"))
	assert.Equal(t, ModeJSON, ParseMode("yaml"))
}

func TestPageJSONKeepsEnvelope(t *testing.T) {
	page := &shopify.Page{
		Items:      []any{map[string]any{"id": float64(1), "title": "Shirt"}},
		Count:      1,
		HasMore:    true,
		NextCursor: "abc",
	}

	out, err := Page(page, ModeJSON, Products)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, float64(1), decoded["count"])
	assert.Equal(t, true, decoded["hasMore"])
	assert.Equal(t, "abc", decoded["nextCursor"])
	assert.Contains(t, out, "\n  ", "expected two-space indentation")
}

func TestPageMarkdownProductsTable(t *testing.T) {
	page := &shopify.Page{
		Items: []any{
			map[string]any{
				"id":       float64(632910392),
				"title":    "IPod Nano",
				"vendor":   "Apple",
				"status":   "active",
				"variants": []any{map[string]any{}, map[string]any{}},
			},
		},
		Count: 1,
	}

	out, err := Page(page, ModeMarkdown, Products)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "| ID | Title | Vendor | Status | Variants |", lines[0])
	assert.Equal(t, "| --- | --- | --- | --- | --- |", lines[1])
	assert.Equal(t, "| 632910392 | IPod Nano | Apple | active | 2 |", lines[2])
	assert.Contains(t, out, "Showing 1 item(s).")
	assert.NotContains(t, out, "More results")
}

func TestPageMarkdownEmpty(t *testing.T) {
	out, err := Page(&shopify.Page{}, ModeMarkdown, Orders)
	require.NoError(t, err)
	assert.Equal(t, "No items found.", out)
}

func TestPageMarkdownFooterSignalsMore(t *testing.T) {
	page := &shopify.Page{
		Items:      []any{map[string]any{"id": float64(1)}},
		Count:      1,
		HasMore:    true,
		NextCursor: "cursor-xyz",
	}

	out, err := Page(page, ModeMarkdown, Products)
	require.NoError(t, err)
	assert.Contains(t, out, "More results may be available.")
	assert.Contains(t, out, "Next page cursor: `cursor-xyz`.")
}

// TestPageMarkdownGenericTable verifies the fallback for entities without a
// curated column set: sorted keys from the first item, capped at five.
func TestPageMarkdownGenericTable(t *testing.T) {
	page := &shopify.Page{
		Items: []any{
			map[string]any{"zeta": "z", "alpha": "a", "beta": "b", "gamma": "g", "delta": "d", "epsilon": "e"},
		},
		Count: 1,
	}

	out, err := Page(page, ModeMarkdown, Entity("mystery"))
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "| alpha | beta | delta | epsilon | gamma |", lines[0])
	assert.Equal(t, "| a | b | d | e | g |", lines[2])
	assert.NotContains(t, lines[0], "zeta")
}

func TestCellEscapesTableBreakers(t *testing.T) {
	page := &shopify.Page{
		Items: []any{map[string]any{"id": float64(1), "title": "Left | Right\nDown"}},
		Count: 1,
	}

	out, err := Page(page, ModeMarkdown, Products)
	require.NoError(t, err)
	assert.Contains(t, out, `Left \| Right Down`)
}

func TestItemMarkdownNestedFences(t *testing.T) {
	item := map[string]any{
		"id":    float64(450789469),
		"name":  "#1001",
		"email": "jane@example.com",
		"lineItems": []any{
			map[string]any{"title": "Shirt", "quantity": float64(2)},
		},
	}

	out, err := Item(item, ModeMarkdown, Orders)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "## #1001"), "heading should use the name field, got %q", out)
	assert.Contains(t, out, "- **email**: jane@example.com")
	assert.Contains(t, out, "- **lineItems**:")
	assert.Contains(t, out, "```json")
	assert.Contains(t, out, `"quantity": 2`)
}

func TestItemJSON(t *testing.T) {
	out, err := Item(map[string]any{"id": float64(5)}, ModeJSON, Products)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5}`, out)
}

func TestHeadingFallsBackToEntityAndID(t *testing.T) {
	assert.Equal(t, "products 9", heading(map[string]any{"id": float64(9)}, Products))
	assert.Equal(t, "products", heading(map[string]any{}, Products))
}

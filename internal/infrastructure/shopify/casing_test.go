package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCamel(t *testing.T) {
	cases := []struct{ in, want string }{
		{in: "created_at", want: "createdAt"},
		{in: "line_items", want: "lineItems"},
		{in: "total_price_usd", want: "totalPriceUsd"},
		{in: "id", want: "id"},
		{in: "", want: ""},
		{in: "address_1", want: "address_1"},
		{in: "province_code_2", want: "provinceCode_2"},
		{in: "already_camelCase", want: "alreadyCamelCase"},
		{in: "trailing_underscore_", want: "trailingUnderscore_"},
		{in: "__double", want: "_Double"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, toCamel(tc.in), "toCamel(%q)", tc.in)
	}
}

func TestToSnake(t *testing.T) {
	cases := []struct{ in, want string }{
		{in: "createdAt", want: "created_at"},
		{in: "lineItems", want: "line_items"},
		{in: "totalPriceUsd", want: "total_price_usd"},
		{in: "id", want: "id"},
		{in: "", want: ""},
		{in: "address_1", want: "address_1"},
		{in: "asset[key]", want: "asset[key]"},
		{in: "HTMLBody", want: "_h_t_m_l_body"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, toSnake(tc.in), "toSnake(%q)", tc.in)
	}
}

// TestCasingRoundTrip verifies that the Admin API's key vocabulary survives
// snake -> camel -> snake unchanged, including keys with digits and odd
// underscore placement.
func TestCasingRoundTrip(t *testing.T) {
	keys := []string{
		"created_at",
		"line_items",
		"billing_address",
		"address_1",
		"address_2",
		"total_price_usd",
		"id",
		"tags",
		"accepts_marketing_updated_at",
		"admin_graphql_api_id",
		"_private",
		"__meta",
		"trailing_",
	}
	for _, key := range keys {
		assert.Equal(t, key, toSnake(toCamel(key)), "round trip of %q", key)
	}
}

func TestCamelizeKeysNestedTree(t *testing.T) {
	in := map[string]any{
		"created_at": "2024-01-01T00:00:00Z",
		"line_items": []any{
			map[string]any{"variant_id": float64(1), "fulfillment_status": nil},
			map[string]any{"variant_id": float64(2)},
		},
		"billing_address": map[string]any{"province_code": "ON"},
		"total_price":     "10.00",
	}

	out, ok := camelizeKeys(in).(map[string]any)
	if !ok {
		t.Fatalf("camelizeKeys returned %T, want map", camelizeKeys(in))
	}

	assert.Equal(t, "2024-01-01T00:00:00Z", out["createdAt"])
	assert.Equal(t, "10.00", out["totalPrice"])

	items := out["lineItems"].([]any)
	assert.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, float64(1), first["variantId"])
	assert.Contains(t, first, "fulfillmentStatus")
	assert.Nil(t, first["fulfillmentStatus"])

	addr := out["billingAddress"].(map[string]any)
	assert.Equal(t, "ON", addr["provinceCode"])
}

func TestSnakeKeysInverse(t *testing.T) {
	in := map[string]any{
		"bodyHtml":  "<p>hi</p>",
		"variants":  []any{map[string]any{"inventoryQuantity": float64(3)}},
		"published": true,
	}

	out := snakeKeys(in).(map[string]any)
	assert.Equal(t, "<p>hi</p>", out["body_html"])
	assert.Equal(t, true, out["published"])
	variant := out["variants"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(3), variant["inventory_quantity"])
}

func TestTransformKeysLeavesScalars(t *testing.T) {
	assert.Nil(t, camelizeKeys(nil))
	assert.Equal(t, "plain", camelizeKeys("plain"))
	assert.Equal(t, float64(7), camelizeKeys(float64(7)))
}

package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsPagination(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/products.json", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		w.Header().Set("Link", `<https://demo.myshopify.com/admin/api/2024-01/products.json?page_info=cursor2&limit=2>; rel="next"`)
		w.Write([]byte(`{"products":[{"id":1,"created_at":"2024-01-01"},{"id":2,"created_at":"2024-01-02"}]}`))
	})

	page, err := client.ListProducts(context.Background(), map[string]any{"limit": float64(2)})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Count)
	assert.True(t, page.HasMore)
	assert.Equal(t, "cursor2", page.NextCursor)

	first := page.Items[0].(map[string]any)
	assert.Equal(t, "2024-01-01", first["createdAt"])
}

func TestListProductsLastPage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"id":1}]}`))
	})

	page, err := client.ListProducts(context.Background(), map[string]any{"limit": float64(5)})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Count)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}

// TestListProductsDefaultWindow verifies the heuristic against the platform
// default: fifty items with no explicit limit still reads as "more likely".
func TestListProductsDefaultWindow(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		items := make([]map[string]any, DefaultPageSize)
		for i := range items {
			items[i] = map[string]any{"id": i}
		}
		json.NewEncoder(w).Encode(map[string]any{"products": items})
	})

	page, err := client.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, page.HasMore)
}

func TestCountProducts(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/products/count.json", r.URL.Path)
		w.Write([]byte(`{"count":42}`))
	})

	n, err := client.CountProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestCreateProductWrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))

		product := body["product"].(map[string]any)
		assert.Equal(t, "Shirt", product["title"])
		assert.Equal(t, "<p>soft</p>", product["body_html"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"product":{"id":7,"title":"Shirt"}}`))
	})

	created, err := client.CreateProduct(context.Background(), map[string]any{
		"title":    "Shirt",
		"bodyHtml": "<p>soft</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(7), created.(map[string]any)["id"])
}

func TestCompleteDraftOrderSendsQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/api/2024-01/draft_orders/3/complete.json", r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("payment_pending"))
		w.Write([]byte(`{"draft_order":{"id":3,"status":"completed"}}`))
	})

	completed, err := client.CompleteDraftOrder(context.Background(), "3", map[string]any{"paymentPending": "pending"})
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.(map[string]any)["status"])
}

func TestSendDraftOrderInvoiceEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))

		invoice := body["draft_order_invoice"].(map[string]any)
		assert.Equal(t, "jane@example.com", invoice["to"])

		w.Write([]byte(`{"draft_order_invoice":{"to":"jane@example.com"}}`))
	})

	sent, err := client.SendDraftOrderInvoice(context.Background(), "3", map[string]any{"to": "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", sent.(map[string]any)["to"])
}

func TestGetThemeAssetKeyParameter(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "templates/index.liquid", r.URL.Query().Get("asset[key]"))
		w.Write([]byte(`{"asset":{"key":"templates/index.liquid","value":"<html/>"}}`))
	})

	asset, err := client.GetThemeAsset(context.Background(), "12", "templates/index.liquid")
	require.NoError(t, err)
	assert.Equal(t, "<html/>", asset.(map[string]any)["value"])
}

func TestAdjustInventoryLevel(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/inventory_levels/adjust.json", r.URL.Path)

		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, float64(-2), body["available_adjustment"])
		assert.Equal(t, float64(905684977), body["location_id"])

		w.Write([]byte(`{"inventory_level":{"available":4}}`))
	})

	level, err := client.AdjustInventoryLevel(context.Background(), map[string]any{
		"locationId":          float64(905684977),
		"inventoryItemId":     float64(808950810),
		"availableAdjustment": float64(-2),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(4), level.(map[string]any)["available"])
}

func TestObjectFallsBackToPayload(t *testing.T) {
	// Unknown envelope shapes pass through rather than vanishing.
	data := map[string]any{"unexpected": "shape"}
	assert.Equal(t, data, object(data, "product"))
	assert.Nil(t, collection(data, "products"))
}

func TestListMetafieldsOwnerScope(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"metafields":[]}`))
	})

	_, err := client.ListMetafields(context.Background(), "product", "632910392", nil)
	require.NoError(t, err)
	assert.Equal(t, "/admin/api/2024-01/products/632910392/metafields.json", gotPath)

	_, err = client.ListMetafields(context.Background(), "draftOrder", "99", nil)
	require.NoError(t, err)
	assert.Equal(t, "/admin/api/2024-01/draft_orders/99/metafields.json", gotPath)

	_, err = client.ListMetafields(context.Background(), "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "/admin/api/2024-01/metafields.json", gotPath)
}

func TestCancelOrderBodyOptions(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/orders/450789469/cancel.json", r.URL.Path)

		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "customer", body["reason"])

		fmt.Fprint(w, `{"order":{"id":450789469,"cancel_reason":"customer"}}`)
	})

	cancelled, err := client.CancelOrder(context.Background(), "450789469", map[string]any{"reason": "customer"})
	require.NoError(t, err)
	assert.Equal(t, "customer", cancelled.(map[string]any)["cancelReason"])
}

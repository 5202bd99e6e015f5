package shopify

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestedLimit(t *testing.T) {
	assert.Equal(t, DefaultPageSize, requestedLimit(nil))
	assert.Equal(t, DefaultPageSize, requestedLimit(map[string]any{"status": "open"}))
	assert.Equal(t, 5, requestedLimit(map[string]any{"limit": float64(5)}))
	assert.Equal(t, 5, requestedLimit(map[string]any{"limit": 5}))
	assert.Equal(t, 5, requestedLimit(map[string]any{"limit": "5"}))
	assert.Equal(t, DefaultPageSize, requestedLimit(map[string]any{"limit": "many"}))
}

func TestNextPageInfo(t *testing.T) {
	t.Run("next only", func(t *testing.T) {
		header := http.Header{}
		header.Set("Link", `<https://demo.myshopify.com/admin/api/2024-01/products.json?page_info=abc123&limit=5>; rel="next"`)
		assert.Equal(t, "abc123", nextPageInfo(header))
	})

	t.Run("previous and next", func(t *testing.T) {
		header := http.Header{}
		header.Set("Link", `<https://demo.myshopify.com/admin/api/2024-01/products.json?page_info=prev1>; rel="previous", <https://demo.myshopify.com/admin/api/2024-01/products.json?page_info=next2>; rel="next"`)
		assert.Equal(t, "next2", nextPageInfo(header))
	})

	t.Run("previous only", func(t *testing.T) {
		header := http.Header{}
		header.Set("Link", `<https://demo.myshopify.com/admin/api/2024-01/products.json?page_info=prev1>; rel="previous"`)
		assert.Equal(t, "", nextPageInfo(header))
	})

	t.Run("no header", func(t *testing.T) {
		assert.Equal(t, "", nextPageInfo(http.Header{}))
	})

	t.Run("cursor at end of url", func(t *testing.T) {
		header := http.Header{}
		header.Set("Link", `<https://demo.myshopify.com/admin/api/2024-01/products.json?limit=5&page_info=tail>; rel="next"`)
		assert.Equal(t, "tail", nextPageInfo(header))
	})
}

// TestNewPageHasMore verifies the full-window heuristic: a page that came
// back exactly as large as requested is assumed to have a successor.
func TestNewPageHasMore(t *testing.T) {
	items := func(n int) []any {
		out := make([]any, n)
		for i := range out {
			out[i] = map[string]any{"id": float64(i)}
		}
		return out
	}

	full := newPage(items(5), 5, http.Header{})
	assert.True(t, full.HasMore)
	assert.Equal(t, 5, full.Count)

	short := newPage(items(3), 5, http.Header{})
	assert.False(t, short.HasMore)
	assert.Equal(t, 3, short.Count)

	empty := newPage(nil, 5, http.Header{})
	assert.False(t, empty.HasMore)
	assert.Equal(t, 0, empty.Count)
}

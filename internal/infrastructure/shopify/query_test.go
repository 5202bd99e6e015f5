package shopify

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseQuery decodes a built query string back into values so assertions do
// not depend on url.Values' key ordering or percent escaping of commas.
func parseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return values
}

func TestBuildQueryEmpty(t *testing.T) {
	assert.Equal(t, "", buildQuery(nil))
	assert.Equal(t, "", buildQuery(map[string]any{}))
}

func TestBuildQuerySnakesKeysAndStringifiesValues(t *testing.T) {
	values := parseQuery(t, buildQuery(map[string]any{
		"limit":        float64(2),
		"sinceId":      "5",
		"createdAtMin": "2024-01-01T00:00:00Z",
		"published":    true,
	}))

	assert.Equal(t, "2", values.Get("limit"))
	assert.Equal(t, "5", values.Get("since_id"))
	assert.Equal(t, "2024-01-01T00:00:00Z", values.Get("created_at_min"))
	assert.Equal(t, "true", values.Get("published"))
}

func TestBuildQueryJoinsSlices(t *testing.T) {
	values := parseQuery(t, buildQuery(map[string]any{
		"ids":    []any{"10", "11", float64(12)},
		"fields": []string{"id", "title"},
	}))

	assert.Equal(t, "10,11,12", values.Get("ids"))
	assert.Equal(t, "id,title", values.Get("fields"))
}

func TestBuildQueryDropsNils(t *testing.T) {
	values := parseQuery(t, buildQuery(map[string]any{
		"status":  "open",
		"sinceId": nil,
	}))

	assert.Equal(t, "open", values.Get("status"))
	assert.False(t, values.Has("since_id"))
}

func TestBuildQueryFloatRendering(t *testing.T) {
	// Whole JSON numbers render without a fraction, fractional ones keep it.
	assert.Equal(t, "limit=250", buildQuery(map[string]any{"limit": float64(250)}))
	assert.Equal(t, "weight=2.5", buildQuery(map[string]any{"weight": 2.5}))
}

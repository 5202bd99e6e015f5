package shopify

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// buildQuery turns an internal-cased option map into a wire query string.
// Nil values are dropped, slices collapse into comma-joined values, and
// float64 options (how JSON numbers arrive) render without a fraction when
// they are whole. Parameter order is whatever url.Values produces.
func buildQuery(opts map[string]any) string {
	if len(opts) == 0 {
		return ""
	}
	values := url.Values{}
	for key, raw := range opts {
		if raw == nil {
			continue
		}
		values.Set(toSnake(key), queryValue(raw))
	}
	return values.Encode()
}

func queryValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case []string:
		return strings.Join(t, ",")
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, queryValue(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}

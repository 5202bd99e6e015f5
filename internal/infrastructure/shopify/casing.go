package shopify

import "strings"

// The Admin API speaks snake_case, everything above this client speaks
// camelCase. Both transforms are byte oriented: toCamel lifts only
// underscore-lowercase pairs, so digits and leading, trailing, or repeated
// underscores survive a round trip unchanged.

func toCamel(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		if key[i] == '_' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			b.WriteByte(key[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(key[i])
	}
	return b.String()
}

func toSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		if key[i] >= 'A' && key[i] <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(key[i] - 'A' + 'a')
			continue
		}
		b.WriteByte(key[i])
	}
	return b.String()
}

// camelizeKeys rewrites every map key in a decoded JSON tree to camelCase,
// recursing through nested maps and slices. Scalars, including nil, pass
// through untouched.
func camelizeKeys(v any) any {
	return transformKeys(v, toCamel)
}

// snakeKeys is the inverse direction, applied to outgoing request bodies.
func snakeKeys(v any) any {
	return transformKeys(v, toSnake)
}

func transformKeys(v any, transform func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for key, val := range t {
			out[transform(key)] = transformKeys(val, transform)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = transformKeys(val, transform)
		}
		return out
	default:
		return v
	}
}

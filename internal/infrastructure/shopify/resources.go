package shopify

import "context"

// The Admin REST API wraps every payload in a resource envelope: lists come
// back as {"products": [...]}, single objects as {"product": {...}}, and
// request bodies are expected in the same shape. The helpers below unwrap and
// wrap around that convention so the per-resource files stay declarative.
// Unwrap keys are internal-cased because unwrapping runs after camelization
// ("draftOrders", not "draft_orders").

// collection pulls the named list out of a response payload.
func collection(data any, key string) []any {
	m, ok := data.(map[string]any)
	if !ok {
		return nil
	}
	items, _ := m[key].([]any)
	return items
}

// object pulls the named object out of a response payload, falling back to
// the payload itself when the envelope key is absent.
func object(data any, key string) any {
	if m, ok := data.(map[string]any); ok {
		if inner, ok := m[key]; ok {
			return inner
		}
	}
	return data
}

func countValue(data any) int {
	m, ok := data.(map[string]any)
	if !ok {
		return 0
	}
	n, _ := m["count"].(float64)
	return int(n)
}

func (c *Client) list(ctx context.Context, path, key string, opts map[string]any) (*Page, error) {
	res, err := c.Get(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return newPage(collection(res.Data, key), requestedLimit(opts), res.Header), nil
}

func (c *Client) getOne(ctx context.Context, path, key string, opts map[string]any) (any, error) {
	res, err := c.Get(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return object(res.Data, key), nil
}

func (c *Client) createOne(ctx context.Context, path, key string, attrs map[string]any) (any, error) {
	res, err := c.Post(ctx, path, map[string]any{key: attrs})
	if err != nil {
		return nil, err
	}
	return object(res.Data, key), nil
}

func (c *Client) updateOne(ctx context.Context, path, key string, attrs map[string]any) (any, error) {
	res, err := c.Put(ctx, path, map[string]any{key: attrs})
	if err != nil {
		return nil, err
	}
	return object(res.Data, key), nil
}

func (c *Client) countOf(ctx context.Context, path string, opts map[string]any) (int, error) {
	res, err := c.Get(ctx, path, opts)
	if err != nil {
		return 0, err
	}
	return countValue(res.Data), nil
}

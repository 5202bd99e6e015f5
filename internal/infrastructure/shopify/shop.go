package shopify

import "context"

// GetShop returns the shop resource with optional field selection.
func (c *Client) GetShop(ctx context.Context, opts map[string]any) (any, error) {
	return c.getOne(ctx, "shop.json", "shop", opts)
}

// ListPolicies returns the shop's legal policies. There is no single-policy
// endpoint on the platform.
func (c *Client) ListPolicies(ctx context.Context) (*Page, error) {
	return c.list(ctx, "policies.json", "policies", nil)
}

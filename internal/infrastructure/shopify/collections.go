package shopify

import (
	"context"
	"fmt"
)

// ListCustomCollections returns a page of manually curated collections.
func (c *Client) ListCustomCollections(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "custom_collections.json", "customCollections", opts)
}

// ListSmartCollections returns a page of rule-based collections.
func (c *Client) ListSmartCollections(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "smart_collections.json", "smartCollections", opts)
}

// GetCollection returns a single collection of either kind.
func (c *Client) GetCollection(ctx context.Context, id string) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("collections/%s.json", id), "collection", nil)
}

// ListCollectionProducts returns the products published in a collection.
func (c *Client) ListCollectionProducts(ctx context.Context, id string, opts map[string]any) (*Page, error) {
	return c.list(ctx, fmt.Sprintf("collections/%s/products.json", id), "products", opts)
}

// CreateCustomCollection creates a manually curated collection.
func (c *Client) CreateCustomCollection(ctx context.Context, attrs map[string]any) (any, error) {
	return c.createOne(ctx, "custom_collections.json", "customCollection", attrs)
}

// UpdateCustomCollection applies a partial update to a custom collection,
// including collects for product membership.
func (c *Client) UpdateCustomCollection(ctx context.Context, id string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("custom_collections/%s.json", id), "customCollection", attrs)
}

// DeleteCustomCollection removes a custom collection.
func (c *Client) DeleteCustomCollection(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("custom_collections/%s.json", id))
	return err
}

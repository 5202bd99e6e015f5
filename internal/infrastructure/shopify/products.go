package shopify

import (
	"context"
	"fmt"
)

// ListProducts returns a page of products filtered by the given options.
func (c *Client) ListProducts(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "products.json", "products", opts)
}

// GetProduct returns a single product with optional field selection.
func (c *Client) GetProduct(ctx context.Context, id string, opts map[string]any) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("products/%s.json", id), "product", opts)
}

// CreateProduct creates a product from internal-cased attributes.
func (c *Client) CreateProduct(ctx context.Context, attrs map[string]any) (any, error) {
	return c.createOne(ctx, "products.json", "product", attrs)
}

// UpdateProduct applies a partial update to a product.
func (c *Client) UpdateProduct(ctx context.Context, id string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("products/%s.json", id), "product", attrs)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("products/%s.json", id))
	return err
}

// CountProducts returns the number of products matching the options.
func (c *Client) CountProducts(ctx context.Context, opts map[string]any) (int, error) {
	return c.countOf(ctx, "products/count.json", opts)
}

// ListProductVariants returns the variants of a product.
func (c *Client) ListProductVariants(ctx context.Context, productID string, opts map[string]any) (*Page, error) {
	return c.list(ctx, fmt.Sprintf("products/%s/variants.json", productID), "variants", opts)
}

// GetVariant returns a single variant.
func (c *Client) GetVariant(ctx context.Context, id string, opts map[string]any) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("variants/%s.json", id), "variant", opts)
}

// UpdateVariant applies a partial update to a variant.
func (c *Client) UpdateVariant(ctx context.Context, id string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("variants/%s.json", id), "variant", attrs)
}

package shopify

import (
	"context"
	"fmt"
)

// metafieldBase resolves the path prefix for an owner-scoped or shop-level
// metafield endpoint. Owner types arrive internal-cased and map onto the
// platform's plural path segments.
func metafieldBase(ownerType, ownerID string) string {
	if ownerType == "" || ownerID == "" {
		return "metafields"
	}
	return fmt.Sprintf("%s/%s/metafields", toSnake(ownerType)+"s", ownerID)
}

// ListMetafields returns metafields, scoped to an owner resource when both
// ownerType and ownerID are given and shop-level otherwise.
func (c *Client) ListMetafields(ctx context.Context, ownerType, ownerID string, opts map[string]any) (*Page, error) {
	return c.list(ctx, metafieldBase(ownerType, ownerID)+".json", "metafields", opts)
}

// GetMetafield returns a single metafield by id.
func (c *Client) GetMetafield(ctx context.Context, id string) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("metafields/%s.json", id), "metafield", nil)
}

// CreateMetafield creates a metafield on the given owner, or on the shop
// when no owner is given.
func (c *Client) CreateMetafield(ctx context.Context, ownerType, ownerID string, attrs map[string]any) (any, error) {
	return c.createOne(ctx, metafieldBase(ownerType, ownerID)+".json", "metafield", attrs)
}

// UpdateMetafield updates a metafield's value or type.
func (c *Client) UpdateMetafield(ctx context.Context, id string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("metafields/%s.json", id), "metafield", attrs)
}

// DeleteMetafield removes a metafield.
func (c *Client) DeleteMetafield(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("metafields/%s.json", id))
	return err
}

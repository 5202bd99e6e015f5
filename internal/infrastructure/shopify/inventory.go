package shopify

import (
	"context"
	"fmt"
)

// ListInventoryItems returns inventory items by id. The ids option is
// required by the platform.
func (c *Client) ListInventoryItems(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "inventory_items.json", "inventoryItems", opts)
}

// GetInventoryItem returns a single inventory item.
func (c *Client) GetInventoryItem(ctx context.Context, id string) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("inventory_items/%s.json", id), "inventoryItem", nil)
}

// UpdateInventoryItem applies a partial update to an inventory item, such
// as cost or tracking.
func (c *Client) UpdateInventoryItem(ctx context.Context, id string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("inventory_items/%s.json", id), "inventoryItem", attrs)
}

// ListInventoryLevels returns inventory levels filtered by item or location
// ids. The platform requires at least one of the two filters.
func (c *Client) ListInventoryLevels(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "inventory_levels.json", "inventoryLevels", opts)
}

// AdjustInventoryLevel adds a signed delta to the available quantity at a
// location.
func (c *Client) AdjustInventoryLevel(ctx context.Context, body map[string]any) (any, error) {
	res, err := c.Post(ctx, "inventory_levels/adjust.json", body)
	if err != nil {
		return nil, err
	}
	return object(res.Data, "inventoryLevel"), nil
}

// SetInventoryLevel sets the absolute available quantity at a location.
func (c *Client) SetInventoryLevel(ctx context.Context, body map[string]any) (any, error) {
	res, err := c.Post(ctx, "inventory_levels/set.json", body)
	if err != nil {
		return nil, err
	}
	return object(res.Data, "inventoryLevel"), nil
}

// ConnectInventoryLevel stocks an inventory item at a new location.
func (c *Client) ConnectInventoryLevel(ctx context.Context, body map[string]any) (any, error) {
	res, err := c.Post(ctx, "inventory_levels/connect.json", body)
	if err != nil {
		return nil, err
	}
	return object(res.Data, "inventoryLevel"), nil
}

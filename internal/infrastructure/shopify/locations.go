package shopify

import (
	"context"
	"fmt"
)

// ListLocations returns the shop's locations. The endpoint is not paginated
// by the platform, so the full set comes back in one page.
func (c *Client) ListLocations(ctx context.Context) (*Page, error) {
	return c.list(ctx, "locations.json", "locations", nil)
}

// GetLocation returns a single location.
func (c *Client) GetLocation(ctx context.Context, id string) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("locations/%s.json", id), "location", nil)
}

// CountLocations returns the number of locations.
func (c *Client) CountLocations(ctx context.Context) (int, error) {
	return c.countOf(ctx, "locations/count.json", nil)
}

// ListLocationInventoryLevels returns the inventory levels stocked at a
// location.
func (c *Client) ListLocationInventoryLevels(ctx context.Context, id string, opts map[string]any) (*Page, error) {
	return c.list(ctx, fmt.Sprintf("locations/%s/inventory_levels.json", id), "inventoryLevels", opts)
}

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerLocationTools(r *Registry) {
	r.add(mcp.NewTool("list_locations",
		mcp.WithDescription("List the shop's locations."),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		page, err := client.ListLocations(ctx)
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Locations)
	})

	r.add(mcp.NewTool("get_location",
		mcp.WithDescription("Fetch a single location by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Location id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		location, err := client.GetLocation(ctx, id)
		if err != nil {
			return "", err
		}
		return format.Item(location, mode(args), format.Locations)
	})

	r.add(mcp.NewTool("count_locations",
		mcp.WithDescription("Count the shop's locations."),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		n, err := client.CountLocations(ctx)
		if err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"count": n})
	})

	r.add(mcp.NewTool("list_location_inventory_levels",
		mcp.WithDescription("List the inventory levels stocked at a location."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Location id.")),
		limitOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		page, err := client.ListLocationInventoryLevels(ctx, id, queryOpts(args, "id"))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.InventoryLevels)
	})
}

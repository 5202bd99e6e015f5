package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerInventoryTools(r *Registry) {
	r.add(mcp.NewTool("list_inventory_items",
		mcp.WithDescription("Fetch inventory items by id. Ids come from product variants' inventoryItemId."),
		mcp.WithArray("ids", mcp.Required(), mcp.Description("Inventory item ids, up to 100."), mcp.Items(map[string]any{"type": "string"})),
		limitOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		if _, ok := args["ids"]; !ok {
			return "", missingArg("ids")
		}
		page, err := client.ListInventoryItems(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.InventoryItems)
	})

	r.add(mcp.NewTool("get_inventory_item",
		mcp.WithDescription("Fetch a single inventory item by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Inventory item id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		item, err := client.GetInventoryItem(ctx, id)
		if err != nil {
			return "", err
		}
		return format.Item(item, mode(args), format.InventoryItems)
	})

	r.add(mcp.NewTool("update_inventory_item",
		mcp.WithDescription("Update an inventory item's cost, sku or tracking flag."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Inventory item id.")),
		mcp.WithObject("inventoryItem", mcp.Required(), mcp.Description("Attributes to change: cost, sku, tracked, countryCodeOfOrigin.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		attrs, err := requireObject(args, "inventoryItem")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateInventoryItem(ctx, id, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.InventoryItems)
	})

	r.add(mcp.NewTool("list_inventory_levels",
		mcp.WithDescription("List inventory levels filtered by item ids, location ids, or both."),
		mcp.WithArray("inventoryItemIds", mcp.Description("Filter by inventory item ids."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("locationIds", mcp.Description("Filter by location ids."), mcp.Items(map[string]any{"type": "string"})),
		limitOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		if _, hasItems := args["inventoryItemIds"]; !hasItems {
			if _, hasLocations := args["locationIds"]; !hasLocations {
				return "", missingArg("inventoryItemIds or locationIds")
			}
		}
		page, err := client.ListInventoryLevels(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.InventoryLevels)
	})

	r.add(mcp.NewTool("adjust_inventory_level",
		mcp.WithDescription("Adjust available inventory by a signed delta at one location."),
		mcp.WithString("inventoryItemId", mcp.Required(), mcp.Description("Inventory item id.")),
		mcp.WithString("locationId", mcp.Required(), mcp.Description("Location id.")),
		mcp.WithNumber("availableAdjustment", mcp.Required(), mcp.Description("Signed quantity delta, e.g. -2.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		itemID, err := requireID(args, "inventoryItemId")
		if err != nil {
			return "", err
		}
		locationID, err := requireID(args, "locationId")
		if err != nil {
			return "", err
		}
		delta, err := requireNumber(args, "availableAdjustment")
		if err != nil {
			return "", err
		}
		level, err := client.AdjustInventoryLevel(ctx, map[string]any{
			"inventoryItemId":     itemID,
			"locationId":          locationID,
			"availableAdjustment": delta,
		})
		if err != nil {
			return "", err
		}
		return format.Item(level, mode(args), format.InventoryLevels)
	})

	r.add(mcp.NewTool("set_inventory_level",
		mcp.WithDescription("Set the absolute available inventory at one location."),
		mcp.WithString("inventoryItemId", mcp.Required(), mcp.Description("Inventory item id.")),
		mcp.WithString("locationId", mcp.Required(), mcp.Description("Location id.")),
		mcp.WithNumber("available", mcp.Required(), mcp.Description("New available quantity.")),
		mcp.WithBoolean("disconnectIfNecessary", mcp.Description("Disconnect other locations when the item tracks a single one.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		itemID, err := requireID(args, "inventoryItemId")
		if err != nil {
			return "", err
		}
		locationID, err := requireID(args, "locationId")
		if err != nil {
			return "", err
		}
		available, err := requireNumber(args, "available")
		if err != nil {
			return "", err
		}
		body := map[string]any{
			"inventoryItemId": itemID,
			"locationId":      locationID,
			"available":       available,
		}
		if boolArg(args, "disconnectIfNecessary") {
			body["disconnectIfNecessary"] = true
		}
		level, err := client.SetInventoryLevel(ctx, body)
		if err != nil {
			return "", err
		}
		return format.Item(level, mode(args), format.InventoryLevels)
	})

	r.add(mcp.NewTool("connect_inventory_level",
		mcp.WithDescription("Stock an inventory item at an additional location."),
		mcp.WithString("inventoryItemId", mcp.Required(), mcp.Description("Inventory item id.")),
		mcp.WithString("locationId", mcp.Required(), mcp.Description("Location id to connect.")),
		mcp.WithBoolean("relocateIfNecessary", mcp.Description("Move inventory when the item tracks a single location.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		itemID, err := requireID(args, "inventoryItemId")
		if err != nil {
			return "", err
		}
		locationID, err := requireID(args, "locationId")
		if err != nil {
			return "", err
		}
		body := map[string]any{
			"inventoryItemId": itemID,
			"locationId":      locationID,
		}
		if boolArg(args, "relocateIfNecessary") {
			body["relocateIfNecessary"] = true
		}
		level, err := client.ConnectInventoryLevel(ctx, body)
		if err != nil {
			return "", err
		}
		return format.Item(level, mode(args), format.InventoryLevels)
	})
}

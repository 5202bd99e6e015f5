package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

// Metafield owner types the Admin API scopes by path. Shop-level metafields
// use no owner at all.
var metafieldOwners = []string{"product", "variant", "customer", "order", "draftOrder", "collection", "page", "blog", "article"}

func registerMetafieldTools(r *Registry) {
	r.add(mcp.NewTool("list_metafields",
		mcp.WithDescription("List metafields, scoped to an owner resource or shop-wide when no owner is given."),
		mcp.WithString("ownerType", mcp.Description("Owning resource type."), mcp.Enum(metafieldOwners...)),
		mcp.WithString("ownerId", mcp.Description("Owning resource id. Required when ownerType is set.")),
		mcp.WithString("namespace", mcp.Description("Filter by namespace.")),
		mcp.WithString("key", mcp.Description("Filter by key.")),
		limitOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		ownerType := stringArg(args, "ownerType")
		ownerID := stringArg(args, "ownerId")
		if ownerType != "" && ownerID == "" {
			return "", missingArg("ownerId")
		}
		page, err := client.ListMetafields(ctx, ownerType, ownerID, queryOpts(args, "ownerType", "ownerId"))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Metafields)
	})

	r.add(mcp.NewTool("get_metafield",
		mcp.WithDescription("Fetch a single metafield by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Metafield id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		metafield, err := client.GetMetafield(ctx, id)
		if err != nil {
			return "", err
		}
		return format.Item(metafield, mode(args), format.Metafields)
	})

	r.add(mcp.NewTool("create_metafield",
		mcp.WithDescription("Create a metafield on an owner resource, or on the shop when no owner is given."),
		mcp.WithString("ownerType", mcp.Description("Owning resource type."), mcp.Enum(metafieldOwners...)),
		mcp.WithString("ownerId", mcp.Description("Owning resource id. Required when ownerType is set.")),
		mcp.WithObject("metafield", mcp.Required(), mcp.Description("Metafield attributes: namespace, key, value, type (e.g. single_line_text_field, number_integer, json).")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		ownerType := stringArg(args, "ownerType")
		ownerID := stringArg(args, "ownerId")
		if ownerType != "" && ownerID == "" {
			return "", missingArg("ownerId")
		}
		attrs, err := requireObject(args, "metafield")
		if err != nil {
			return "", err
		}
		created, err := client.CreateMetafield(ctx, ownerType, ownerID, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(created, mode(args), format.Metafields)
	})

	r.add(mcp.NewTool("update_metafield",
		mcp.WithDescription("Update a metafield's value or type."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Metafield id.")),
		mcp.WithObject("metafield", mcp.Required(), mcp.Description("Attributes to change: value, type.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		attrs, err := requireObject(args, "metafield")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateMetafield(ctx, id, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.Metafields)
	})

	r.add(mcp.NewTool("delete_metafield",
		mcp.WithDescription("Delete a metafield."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Metafield id.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		if err := client.DeleteMetafield(ctx, id); err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"deleted": true, "id": id})
	})
}

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerCollectionTools(r *Registry) {
	r.add(mcp.NewTool("list_custom_collections",
		mcp.WithDescription("List manually curated collections."),
		limitOption(),
		pageInfoOption(),
		mcp.WithString("title", mcp.Description("Filter by exact title.")),
		mcp.WithString("productId", mcp.Description("Only collections containing this product.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		page, err := client.ListCustomCollections(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Collections)
	})

	r.add(mcp.NewTool("list_smart_collections",
		mcp.WithDescription("List rule-based collections."),
		limitOption(),
		pageInfoOption(),
		mcp.WithString("title", mcp.Description("Filter by exact title.")),
		mcp.WithString("productId", mcp.Description("Only collections containing this product.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		page, err := client.ListSmartCollections(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Collections)
	})

	r.add(mcp.NewTool("get_collection",
		mcp.WithDescription("Fetch a single collection of either kind by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Collection id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		collection, err := client.GetCollection(ctx, id)
		if err != nil {
			return "", err
		}
		return format.Item(collection, mode(args), format.Collections)
	})

	r.add(mcp.NewTool("list_collection_products",
		mcp.WithDescription("List the products published in a collection."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Collection id.")),
		limitOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		page, err := client.ListCollectionProducts(ctx, id, queryOpts(args, "id"))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Products)
	})

	r.add(mcp.NewTool("create_custom_collection",
		mcp.WithDescription("Create a manually curated collection."),
		mcp.WithObject("customCollection", mcp.Required(), mcp.Description("Collection attributes: title (required by the platform), bodyHtml, published, collects.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		attrs, err := requireObject(args, "customCollection")
		if err != nil {
			return "", err
		}
		created, err := client.CreateCustomCollection(ctx, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(created, mode(args), format.Collections)
	})

	r.add(mcp.NewTool("update_custom_collection",
		mcp.WithDescription("Update a custom collection, including its product membership via collects."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Collection id.")),
		mcp.WithObject("customCollection", mcp.Required(), mcp.Description("Attributes to change, camelCase keys.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		attrs, err := requireObject(args, "customCollection")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateCustomCollection(ctx, id, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.Collections)
	})

	r.add(mcp.NewTool("delete_custom_collection",
		mcp.WithDescription("Delete a custom collection."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Collection id.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		if err := client.DeleteCustomCollection(ctx, id); err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"deleted": true, "id": id})
	})
}

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerProductTools(r *Registry) {
	r.add(mcp.NewTool("list_products",
		mcp.WithDescription("List products with optional filters and cursor pagination."),
		limitOption(),
		pageInfoOption(),
		mcp.WithString("status", mcp.Description("Filter by status."), mcp.Enum("active", "archived", "draft")),
		mcp.WithString("vendor", mcp.Description("Filter by vendor name.")),
		mcp.WithString("productType", mcp.Description("Filter by product type.")),
		mcp.WithArray("ids", mcp.Description("Restrict to these product ids."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("sinceId", mcp.Description("Only products with an id above this value.")),
		mcp.WithString("createdAtMin", mcp.Description("Lower bound on creation time, ISO 8601.")),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		page, err := client.ListProducts(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Products)
	})

	r.add(mcp.NewTool("get_product",
		mcp.WithDescription("Fetch a single product by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Product id.")),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		product, err := client.GetProduct(ctx, id, queryOpts(args, "id"))
		if err != nil {
			return "", err
		}
		return format.Item(product, mode(args), format.Products)
	})

	r.add(mcp.NewTool("create_product",
		mcp.WithDescription("Create a product. Attributes use camelCase keys, e.g. bodyHtml, productType."),
		mcp.WithObject("product", mcp.Required(), mcp.Description("Product attributes: title (required by the platform), bodyHtml, vendor, productType, tags, variants, options, images, status.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		attrs, err := requireObject(args, "product")
		if err != nil {
			return "", err
		}
		created, err := client.CreateProduct(ctx, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(created, mode(args), format.Products)
	})

	r.add(mcp.NewTool("update_product",
		mcp.WithDescription("Update a product. Only the supplied attributes change."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Product id.")),
		mcp.WithObject("product", mcp.Required(), mcp.Description("Attributes to change, camelCase keys.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		attrs, err := requireObject(args, "product")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateProduct(ctx, id, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.Products)
	})

	r.add(mcp.NewTool("delete_product",
		mcp.WithDescription("Delete a product permanently."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Product id.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		if err := client.DeleteProduct(ctx, id); err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"deleted": true, "id": id})
	})

	r.add(mcp.NewTool("count_products",
		mcp.WithDescription("Count products, optionally filtered."),
		mcp.WithString("status", mcp.Description("Filter by status."), mcp.Enum("active", "archived", "draft")),
		mcp.WithString("vendor", mcp.Description("Filter by vendor name.")),
		mcp.WithString("productType", mcp.Description("Filter by product type.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		n, err := client.CountProducts(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"count": n})
	})

	r.add(mcp.NewTool("list_product_variants",
		mcp.WithDescription("List the variants of a product."),
		mcp.WithString("productId", mcp.Required(), mcp.Description("Owning product id.")),
		limitOption(),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		productID, err := requireID(args, "productId")
		if err != nil {
			return "", err
		}
		page, err := client.ListProductVariants(ctx, productID, queryOpts(args, "productId"))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Entity("variants"))
	})

	r.add(mcp.NewTool("get_variant",
		mcp.WithDescription("Fetch a single product variant by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Variant id.")),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		variant, err := client.GetVariant(ctx, id, queryOpts(args, "id"))
		if err != nil {
			return "", err
		}
		return format.Item(variant, mode(args), format.Entity("variants"))
	})

	r.add(mcp.NewTool("update_variant",
		mcp.WithDescription("Update a product variant, e.g. price, sku or inventory policy."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Variant id.")),
		mcp.WithObject("variant", mcp.Required(), mcp.Description("Attributes to change, camelCase keys such as price, compareAtPrice, sku.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		attrs, err := requireObject(args, "variant")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateVariant(ctx, id, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.Entity("variants"))
	})
}

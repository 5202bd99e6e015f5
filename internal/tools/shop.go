package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerShopTools(r *Registry) {
	r.add(mcp.NewTool("get_shop",
		mcp.WithDescription("Fetch the shop's configuration: name, domains, currency, timezone, plan."),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		shop, err := client.GetShop(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Item(shop, mode(args), format.Entity("shop"))
	})

	r.add(mcp.NewTool("list_shop_policies",
		mcp.WithDescription("List the shop's legal policies: refund, privacy, terms of service."),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		page, err := client.ListPolicies(ctx)
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Policies)
	})
}

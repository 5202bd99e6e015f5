package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerDiscountTools(r *Registry) {
	r.add(mcp.NewTool("list_price_rules",
		mcp.WithDescription("List price rules, the containers discount codes hang off."),
		limitOption(),
		pageInfoOption(),
		mcp.WithString("startsAtMin", mcp.Description("Lower bound on the rule's start time, ISO 8601.")),
		mcp.WithString("endsAtMax", mcp.Description("Upper bound on the rule's end time, ISO 8601.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		page, err := client.ListPriceRules(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.PriceRules)
	})

	r.add(mcp.NewTool("get_price_rule",
		mcp.WithDescription("Fetch a single price rule by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Price rule id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		rule, err := client.GetPriceRule(ctx, id)
		if err != nil {
			return "", err
		}
		return format.Item(rule, mode(args), format.PriceRules)
	})

	r.add(mcp.NewTool("create_price_rule",
		mcp.WithDescription("Create a price rule. Pair with create_discount_code to make it redeemable."),
		mcp.WithObject("priceRule", mcp.Required(), mcp.Description("Rule attributes: title, targetType, targetSelection, allocationMethod, valueType, value, customerSelection, startsAt.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		attrs, err := requireObject(args, "priceRule")
		if err != nil {
			return "", err
		}
		created, err := client.CreatePriceRule(ctx, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(created, mode(args), format.PriceRules)
	})

	r.add(mcp.NewTool("update_price_rule",
		mcp.WithDescription("Update a price rule."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Price rule id.")),
		mcp.WithObject("priceRule", mcp.Required(), mcp.Description("Attributes to change, camelCase keys.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		attrs, err := requireObject(args, "priceRule")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdatePriceRule(ctx, id, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.PriceRules)
	})

	r.add(mcp.NewTool("delete_price_rule",
		mcp.WithDescription("Delete a price rule and its discount codes."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Price rule id.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		if err := client.DeletePriceRule(ctx, id); err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"deleted": true, "id": id})
	})

	r.add(mcp.NewTool("list_discount_codes",
		mcp.WithDescription("List the discount codes under a price rule."),
		mcp.WithString("priceRuleId", mcp.Required(), mcp.Description("Price rule id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		priceRuleID, err := requireID(args, "priceRuleId")
		if err != nil {
			return "", err
		}
		page, err := client.ListDiscountCodes(ctx, priceRuleID)
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.DiscountCodes)
	})

	r.add(mcp.NewTool("create_discount_code",
		mcp.WithDescription("Create a redeemable code under a price rule."),
		mcp.WithString("priceRuleId", mcp.Required(), mcp.Description("Price rule id.")),
		mcp.WithString("code", mcp.Required(), mcp.Description("The code customers enter at checkout.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		priceRuleID, err := requireID(args, "priceRuleId")
		if err != nil {
			return "", err
		}
		code, err := requireString(args, "code")
		if err != nil {
			return "", err
		}
		created, err := client.CreateDiscountCode(ctx, priceRuleID, map[string]any{"code": code})
		if err != nil {
			return "", err
		}
		return format.Item(created, mode(args), format.DiscountCodes)
	})

	r.add(mcp.NewTool("delete_discount_code",
		mcp.WithDescription("Delete a discount code from a price rule."),
		mcp.WithString("priceRuleId", mcp.Required(), mcp.Description("Price rule id.")),
		mcp.WithString("id", mcp.Required(), mcp.Description("Discount code id.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		priceRuleID, err := requireID(args, "priceRuleId")
		if err != nil {
			return "", err
		}
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		if err := client.DeleteDiscountCode(ctx, priceRuleID, id); err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"deleted": true, "id": id})
	})
}

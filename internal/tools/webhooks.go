package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerWebhookTools(r *Registry) {
	r.add(mcp.NewTool("list_webhooks",
		mcp.WithDescription("List this app's webhook subscriptions."),
		limitOption(),
		mcp.WithString("topic", mcp.Description("Filter by topic, e.g. orders/create.")),
		mcp.WithString("address", mcp.Description("Filter by delivery address.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		page, err := client.ListWebhooks(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Webhooks)
	})

	r.add(mcp.NewTool("get_webhook",
		mcp.WithDescription("Fetch a single webhook subscription by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Webhook id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		webhook, err := client.GetWebhook(ctx, id)
		if err != nil {
			return "", err
		}
		return format.Item(webhook, mode(args), format.Webhooks)
	})

	r.add(mcp.NewTool("create_webhook",
		mcp.WithDescription("Subscribe a delivery address to a topic."),
		mcp.WithString("topic", mcp.Required(), mcp.Description("Event topic, e.g. orders/create, app/uninstalled.")),
		mcp.WithString("address", mcp.Required(), mcp.Description("HTTPS delivery URL.")),
		mcp.WithString("webhookFormat", mcp.Description("Payload format."), mcp.Enum("json", "xml"), mcp.DefaultString("json")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		topic, err := requireString(args, "topic")
		if err != nil {
			return "", err
		}
		address, err := requireString(args, "address")
		if err != nil {
			return "", err
		}
		attrs := map[string]any{"topic": topic, "address": address}
		if f := stringArg(args, "webhookFormat"); f != "" {
			attrs["format"] = f
		}
		created, err := client.CreateWebhook(ctx, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(created, mode(args), format.Webhooks)
	})

	r.add(mcp.NewTool("update_webhook",
		mcp.WithDescription("Change a subscription's delivery address."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Webhook id.")),
		mcp.WithString("address", mcp.Required(), mcp.Description("New HTTPS delivery URL.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		address, err := requireString(args, "address")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateWebhook(ctx, id, map[string]any{"address": address})
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.Webhooks)
	})

	r.add(mcp.NewTool("delete_webhook",
		mcp.WithDescription("Remove a webhook subscription."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Webhook id.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		if err := client.DeleteWebhook(ctx, id); err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"deleted": true, "id": id})
	})

	r.add(mcp.NewTool("count_webhooks",
		mcp.WithDescription("Count this app's webhook subscriptions."),
		mcp.WithString("topic", mcp.Description("Filter by topic.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		n, err := client.CountWebhooks(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"count": n})
	})
}

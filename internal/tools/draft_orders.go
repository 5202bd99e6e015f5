package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerDraftOrderTools(r *Registry) {
	r.add(mcp.NewTool("list_draft_orders",
		mcp.WithDescription("List draft orders."),
		limitOption(),
		pageInfoOption(),
		mcp.WithString("status", mcp.Description("Draft status filter."), mcp.Enum("open", "invoice_sent", "completed")),
		mcp.WithArray("ids", mcp.Description("Restrict to these draft order ids."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("sinceId", mcp.Description("Only drafts with an id above this value.")),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		page, err := client.ListDraftOrders(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.DraftOrders)
	})

	r.add(mcp.NewTool("get_draft_order",
		mcp.WithDescription("Fetch a single draft order by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Draft order id.")),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		draft, err := client.GetDraftOrder(ctx, id, queryOpts(args, "id"))
		if err != nil {
			return "", err
		}
		return format.Item(draft, mode(args), format.DraftOrders)
	})

	r.add(mcp.NewTool("create_draft_order",
		mcp.WithDescription("Create a draft order for manual checkout or invoicing."),
		mcp.WithObject("draftOrder", mcp.Required(), mcp.Description("Draft attributes: lineItems (required by the platform), customer, appliedDiscount, note, email.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		attrs, err := requireObject(args, "draftOrder")
		if err != nil {
			return "", err
		}
		created, err := client.CreateDraftOrder(ctx, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(created, mode(args), format.DraftOrders)
	})

	r.add(mcp.NewTool("update_draft_order",
		mcp.WithDescription("Update a draft order."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Draft order id.")),
		mcp.WithObject("draftOrder", mcp.Required(), mcp.Description("Attributes to change, camelCase keys.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		attrs, err := requireObject(args, "draftOrder")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateDraftOrder(ctx, id, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.DraftOrders)
	})

	r.add(mcp.NewTool("delete_draft_order",
		mcp.WithDescription("Delete a draft order."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Draft order id.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		if err := client.DeleteDraftOrder(ctx, id); err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"deleted": true, "id": id})
	})

	r.add(mcp.NewTool("complete_draft_order",
		mcp.WithDescription("Convert a draft order into an order."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Draft order id.")),
		mcp.WithString("paymentPending", mcp.Description("Set to true to mark payment as pending instead of paid."), mcp.Enum("true", "false")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		completed, err := client.CompleteDraftOrder(ctx, id, queryOpts(args, "id"))
		if err != nil {
			return "", err
		}
		return format.Item(completed, mode(args), format.DraftOrders)
	})

	r.add(mcp.NewTool("send_draft_order_invoice",
		mcp.WithDescription("Email the draft order invoice to the customer."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Draft order id.")),
		mcp.WithObject("invoice", mcp.Description("Optional overrides: to, from, subject, customMessage, bcc.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		sent, err := client.SendDraftOrderInvoice(ctx, id, objectArg(args, "invoice"))
		if err != nil {
			return "", err
		}
		return format.Item(sent, mode(args), format.Entity("draftOrderInvoice"))
	})
}

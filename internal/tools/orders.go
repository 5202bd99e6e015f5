package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerOrderTools(r *Registry) {
	r.add(mcp.NewTool("list_orders",
		mcp.WithDescription("List orders. The platform defaults to open orders; pass status=any for everything."),
		limitOption(),
		pageInfoOption(),
		mcp.WithString("status", mcp.Description("Order status filter."), mcp.Enum("open", "closed", "cancelled", "any")),
		mcp.WithString("financialStatus", mcp.Description("Filter by payment state, e.g. paid, pending, refunded.")),
		mcp.WithString("fulfillmentStatus", mcp.Description("Filter by fulfillment state, e.g. shipped, unshipped, partial.")),
		mcp.WithString("sinceId", mcp.Description("Only orders with an id above this value.")),
		mcp.WithString("createdAtMin", mcp.Description("Lower bound on creation time, ISO 8601.")),
		mcp.WithString("createdAtMax", mcp.Description("Upper bound on creation time, ISO 8601.")),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		page, err := client.ListOrders(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Orders)
	})

	r.add(mcp.NewTool("get_order",
		mcp.WithDescription("Fetch a single order by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Order id.")),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		order, err := client.GetOrder(ctx, id, queryOpts(args, "id"))
		if err != nil {
			return "", err
		}
		return format.Item(order, mode(args), format.Orders)
	})

	r.add(mcp.NewTool("create_order",
		mcp.WithDescription("Create an order directly, bypassing checkout."),
		mcp.WithObject("order", mcp.Required(), mcp.Description("Order attributes: lineItems (required by the platform), customer, email, financialStatus, tags.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		attrs, err := requireObject(args, "order")
		if err != nil {
			return "", err
		}
		created, err := client.CreateOrder(ctx, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(created, mode(args), format.Orders)
	})

	r.add(mcp.NewTool("update_order",
		mcp.WithDescription("Update an order's editable attributes such as note, tags or email."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Order id.")),
		mcp.WithObject("order", mcp.Required(), mcp.Description("Attributes to change, camelCase keys.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		attrs, err := requireObject(args, "order")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateOrder(ctx, id, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.Orders)
	})

	r.add(mcp.NewTool("delete_order",
		mcp.WithDescription("Delete an order. Only test and archived orders can be deleted."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Order id.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		if err := client.DeleteOrder(ctx, id); err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"deleted": true, "id": id})
	})

	r.add(mcp.NewTool("count_orders",
		mcp.WithDescription("Count orders, optionally filtered."),
		mcp.WithString("status", mcp.Description("Order status filter."), mcp.Enum("open", "closed", "cancelled", "any")),
		mcp.WithString("financialStatus", mcp.Description("Filter by payment state.")),
		mcp.WithString("createdAtMin", mcp.Description("Lower bound on creation time, ISO 8601.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		n, err := client.CountOrders(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"count": n})
	})

	r.add(mcp.NewTool("close_order",
		mcp.WithDescription("Archive an order."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Order id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		order, err := client.CloseOrder(ctx, id)
		if err != nil {
			return "", err
		}
		return format.Item(order, mode(args), format.Orders)
	})

	r.add(mcp.NewTool("open_order",
		mcp.WithDescription("Re-open an archived order."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Order id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		order, err := client.OpenOrder(ctx, id)
		if err != nil {
			return "", err
		}
		return format.Item(order, mode(args), format.Orders)
	})

	r.add(mcp.NewTool("cancel_order",
		mcp.WithDescription("Cancel an order, optionally restocking items and notifying the customer."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Order id.")),
		mcp.WithString("reason", mcp.Description("Cancellation reason."), mcp.Enum("customer", "inventory", "fraud", "declined", "other")),
		mcp.WithBoolean("email", mcp.Description("Send a cancellation email to the customer.")),
		mcp.WithBoolean("restock", mcp.Description("Restock the order's line items.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		order, err := client.CancelOrder(ctx, id, queryOpts(args, "id"))
		if err != nil {
			return "", err
		}
		return format.Item(order, mode(args), format.Orders)
	})
}

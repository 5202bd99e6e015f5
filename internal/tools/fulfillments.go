package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerFulfillmentTools(r *Registry) {
	r.add(mcp.NewTool("list_fulfillments",
		mcp.WithDescription("List the fulfillments of an order."),
		mcp.WithString("orderId", mcp.Required(), mcp.Description("Order id.")),
		limitOption(),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		orderID, err := requireID(args, "orderId")
		if err != nil {
			return "", err
		}
		page, err := client.ListFulfillments(ctx, orderID, queryOpts(args, "orderId"))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Fulfillments)
	})

	r.add(mcp.NewTool("get_fulfillment",
		mcp.WithDescription("Fetch a single fulfillment of an order."),
		mcp.WithString("orderId", mcp.Required(), mcp.Description("Order id.")),
		mcp.WithString("id", mcp.Required(), mcp.Description("Fulfillment id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		orderID, err := requireID(args, "orderId")
		if err != nil {
			return "", err
		}
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		fulfillment, err := client.GetFulfillment(ctx, orderID, id)
		if err != nil {
			return "", err
		}
		return format.Item(fulfillment, mode(args), format.Fulfillments)
	})

	r.add(mcp.NewTool("list_fulfillment_orders",
		mcp.WithDescription("List an order's fulfillment orders, the unit fulfillments are created against."),
		mcp.WithString("orderId", mcp.Required(), mcp.Description("Order id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		orderID, err := requireID(args, "orderId")
		if err != nil {
			return "", err
		}
		page, err := client.ListFulfillmentOrders(ctx, orderID)
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Entity("fulfillmentOrders"))
	})

	r.add(mcp.NewTool("create_fulfillment",
		mcp.WithDescription("Create a fulfillment. Use list_fulfillment_orders first to find the fulfillmentOrderId."),
		mcp.WithObject("fulfillment", mcp.Required(), mcp.Description("Fulfillment attributes: lineItemsByFulfillmentOrder (required by the platform), trackingInfo, notifyCustomer.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		attrs, err := requireObject(args, "fulfillment")
		if err != nil {
			return "", err
		}
		created, err := client.CreateFulfillment(ctx, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(created, mode(args), format.Fulfillments)
	})

	r.add(mcp.NewTool("update_fulfillment_tracking",
		mcp.WithDescription("Replace the tracking details on a fulfillment."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Fulfillment id.")),
		mcp.WithObject("trackingInfo", mcp.Required(), mcp.Description("Tracking details: number, url, company.")),
		mcp.WithBoolean("notifyCustomer", mcp.Description("Send a shipping update to the customer.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		trackingInfo, err := requireObject(args, "trackingInfo")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateFulfillmentTracking(ctx, id, trackingInfo, boolArg(args, "notifyCustomer"))
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.Fulfillments)
	})

	r.add(mcp.NewTool("cancel_fulfillment",
		mcp.WithDescription("Cancel a fulfillment."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Fulfillment id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		cancelled, err := client.CancelFulfillment(ctx, id)
		if err != nil {
			return "", err
		}
		return format.Item(cancelled, mode(args), format.Fulfillments)
	})
}

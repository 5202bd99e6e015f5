package shopify

import (
	"context"
	"fmt"
)

// ListFulfillments returns the fulfillments of an order.
func (c *Client) ListFulfillments(ctx context.Context, orderID string, opts map[string]any) (*Page, error) {
	return c.list(ctx, fmt.Sprintf("orders/%s/fulfillments.json", orderID), "fulfillments", opts)
}

// GetFulfillment returns a single fulfillment of an order.
func (c *Client) GetFulfillment(ctx context.Context, orderID, id string) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("orders/%s/fulfillments/%s.json", orderID, id), "fulfillment", nil)
}

// CreateFulfillment creates a fulfillment against fulfillment orders. The
// modern endpoint is order-independent and takes line items by fulfillment
// order id.
func (c *Client) CreateFulfillment(ctx context.Context, attrs map[string]any) (any, error) {
	return c.createOne(ctx, "fulfillments.json", "fulfillment", attrs)
}

// UpdateFulfillmentTracking replaces the tracking info on a fulfillment.
func (c *Client) UpdateFulfillmentTracking(ctx context.Context, id string, trackingInfo map[string]any, notifyCustomer bool) (any, error) {
	body := map[string]any{
		"fulfillment": map[string]any{
			"trackingInfo":   trackingInfo,
			"notifyCustomer": notifyCustomer,
		},
	}
	res, err := c.Post(ctx, fmt.Sprintf("fulfillments/%s/update_tracking.json", id), body)
	if err != nil {
		return nil, err
	}
	return object(res.Data, "fulfillment"), nil
}

// CancelFulfillment cancels a fulfillment.
func (c *Client) CancelFulfillment(ctx context.Context, id string) (any, error) {
	res, err := c.Post(ctx, fmt.Sprintf("fulfillments/%s/cancel.json", id), nil)
	if err != nil {
		return nil, err
	}
	return object(res.Data, "fulfillment"), nil
}

// ListFulfillmentOrders returns the fulfillment orders of an order, the
// unit modern fulfillments are created against.
func (c *Client) ListFulfillmentOrders(ctx context.Context, orderID string) (*Page, error) {
	return c.list(ctx, fmt.Sprintf("orders/%s/fulfillment_orders.json", orderID), "fulfillmentOrders", nil)
}

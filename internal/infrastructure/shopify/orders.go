package shopify

import (
	"context"
	"fmt"
)

// ListOrders returns a page of orders. The platform defaults to open orders
// only, so callers usually pass status explicitly.
func (c *Client) ListOrders(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "orders.json", "orders", opts)
}

// GetOrder returns a single order.
func (c *Client) GetOrder(ctx context.Context, id string, opts map[string]any) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("orders/%s.json", id), "order", opts)
}

// CreateOrder creates an order from internal-cased attributes.
func (c *Client) CreateOrder(ctx context.Context, attrs map[string]any) (any, error) {
	return c.createOne(ctx, "orders.json", "order", attrs)
}

// UpdateOrder applies a partial update to an order.
func (c *Client) UpdateOrder(ctx context.Context, id string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("orders/%s.json", id), "order", attrs)
}

// DeleteOrder removes an order. Only test and archived orders are deletable.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("orders/%s.json", id))
	return err
}

// CountOrders returns the number of orders matching the options.
func (c *Client) CountOrders(ctx context.Context, opts map[string]any) (int, error) {
	return c.countOf(ctx, "orders/count.json", opts)
}

// CloseOrder archives an order.
func (c *Client) CloseOrder(ctx context.Context, id string) (any, error) {
	res, err := c.Post(ctx, fmt.Sprintf("orders/%s/close.json", id), nil)
	if err != nil {
		return nil, err
	}
	return object(res.Data, "order"), nil
}

// OpenOrder re-opens an archived order.
func (c *Client) OpenOrder(ctx context.Context, id string) (any, error) {
	res, err := c.Post(ctx, fmt.Sprintf("orders/%s/open.json", id), nil)
	if err != nil {
		return nil, err
	}
	return object(res.Data, "order"), nil
}

// CancelOrder cancels an order. Options such as reason, email and restock
// travel in the request body.
func (c *Client) CancelOrder(ctx context.Context, id string, opts map[string]any) (any, error) {
	res, err := c.Post(ctx, fmt.Sprintf("orders/%s/cancel.json", id), opts)
	if err != nil {
		return nil, err
	}
	return object(res.Data, "order"), nil
}

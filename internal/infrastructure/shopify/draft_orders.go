package shopify

import (
	"context"
	"fmt"
	"net/http"
)

// ListDraftOrders returns a page of draft orders.
func (c *Client) ListDraftOrders(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "draft_orders.json", "draftOrders", opts)
}

// GetDraftOrder returns a single draft order.
func (c *Client) GetDraftOrder(ctx context.Context, id string, opts map[string]any) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("draft_orders/%s.json", id), "draftOrder", opts)
}

// CreateDraftOrder creates a draft order from internal-cased attributes.
func (c *Client) CreateDraftOrder(ctx context.Context, attrs map[string]any) (any, error) {
	return c.createOne(ctx, "draft_orders.json", "draftOrder", attrs)
}

// UpdateDraftOrder applies a partial update to a draft order.
func (c *Client) UpdateDraftOrder(ctx context.Context, id string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("draft_orders/%s.json", id), "draftOrder", attrs)
}

// DeleteDraftOrder removes a draft order.
func (c *Client) DeleteDraftOrder(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("draft_orders/%s.json", id))
	return err
}

// CompleteDraftOrder converts a draft order into an order. The payment
// gateway hint travels as a query option.
func (c *Client) CompleteDraftOrder(ctx context.Context, id string, opts map[string]any) (any, error) {
	res, err := c.Do(ctx, http.MethodPut, fmt.Sprintf("draft_orders/%s/complete.json", id), opts, nil)
	if err != nil {
		return nil, err
	}
	return object(res.Data, "draftOrder"), nil
}

// SendDraftOrderInvoice emails the draft order invoice to the customer. An
// empty invoice uses the platform's default template.
func (c *Client) SendDraftOrderInvoice(ctx context.Context, id string, invoice map[string]any) (any, error) {
	if invoice == nil {
		invoice = map[string]any{}
	}
	res, err := c.Post(ctx, fmt.Sprintf("draft_orders/%s/send_invoice.json", id), map[string]any{"draftOrderInvoice": invoice})
	if err != nil {
		return nil, err
	}
	return object(res.Data, "draftOrderInvoice"), nil
}

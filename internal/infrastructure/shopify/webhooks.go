package shopify

import (
	"context"
	"fmt"
)

// ListWebhooks returns the webhook subscriptions registered by this app.
func (c *Client) ListWebhooks(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "webhooks.json", "webhooks", opts)
}

// GetWebhook returns a single webhook subscription.
func (c *Client) GetWebhook(ctx context.Context, id string) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("webhooks/%s.json", id), "webhook", nil)
}

// CreateWebhook subscribes an address to a topic.
func (c *Client) CreateWebhook(ctx context.Context, attrs map[string]any) (any, error) {
	return c.createOne(ctx, "webhooks.json", "webhook", attrs)
}

// UpdateWebhook changes the address or format of a subscription.
func (c *Client) UpdateWebhook(ctx context.Context, id string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("webhooks/%s.json", id), "webhook", attrs)
}

// DeleteWebhook removes a webhook subscription.
func (c *Client) DeleteWebhook(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("webhooks/%s.json", id))
	return err
}

// CountWebhooks returns the number of registered subscriptions.
func (c *Client) CountWebhooks(ctx context.Context, opts map[string]any) (int, error) {
	return c.countOf(ctx, "webhooks/count.json", opts)
}

// Package pubsub fans verified webhook deliveries out over Redis pub/sub,
// which lets every replica of the service react to an event regardless of
// which one received the HTTP delivery.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/domain"
	"shopify-mcp-layer/internal/ports"
)

const webhookChannel = "shopify:webhooks"

// WebhookPubSub implements ports.EventBus on a Redis channel.
type WebhookPubSub struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewWebhookPubSub creates the event bus on an existing Redis client.
func NewWebhookPubSub(client *redis.Client, logger zerolog.Logger) *WebhookPubSub {
	return &WebhookPubSub{client: client, logger: logger}
}

var _ ports.EventBus = (*WebhookPubSub)(nil)

// Publish broadcasts one verified webhook event.
func (ps *WebhookPubSub) Publish(ctx context.Context, event *domain.WebhookEvent) error {
	encoded, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode webhook event: %w", err)
	}
	if err := ps.client.Publish(ctx, webhookChannel, encoded).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event: %w", err)
	}
	ps.logger.Debug().
		Str("topic", event.Topic).
		Str("shop", event.Shop).
		Msg("Webhook event published")
	return nil
}

// Subscribe dispatches incoming events to handler until ctx is cancelled.
// Undecodable messages are logged and skipped; one bad delivery must not
// stall the stream.
func (ps *WebhookPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, event *domain.WebhookEvent)) error {
	sub := ps.client.Subscribe(ctx, webhookChannel)
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to webhook channel: %w", err)
	}
	defer sub.Close()

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			var event domain.WebhookEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				ps.logger.Warn().Err(err).Msg("Dropping undecodable webhook event")
				continue
			}
			handler(ctx, &event)
		}
	}
}

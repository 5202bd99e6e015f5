package application

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/domain"
	"shopify-mcp-layer/internal/ports"
)

// WebhookHandler processes the webhook topics it claims.
type WebhookHandler interface {
	// CanHandle returns true if this handler processes the given topic
	CanHandle(topic string) bool

	// Handle processes one verified webhook event
	Handle(ctx context.Context, event *domain.WebhookEvent) error
}

// WebhookDispatcher routes events to every registered handler that claims
// the topic. Unclaimed topics are logged and acknowledged; Shopify retries
// on failure, so only handler errors propagate.
type WebhookDispatcher struct {
	handlers []WebhookHandler
	logger   zerolog.Logger
}

// NewWebhookDispatcher creates an empty dispatcher.
func NewWebhookDispatcher(logger zerolog.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{logger: logger}
}

// RegisterHandler adds a handler. Registration happens once at startup.
func (d *WebhookDispatcher) RegisterHandler(handler WebhookHandler) {
	d.handlers = append(d.handlers, handler)
}

// Dispatch hands the event to every handler claiming its topic.
func (d *WebhookDispatcher) Dispatch(ctx context.Context, event *domain.WebhookEvent) error {
	handled := false
	for _, handler := range d.handlers {
		if !handler.CanHandle(event.Topic) {
			continue
		}
		handled = true
		if err := handler.Handle(ctx, event); err != nil {
			return fmt.Errorf("failed to handle %s webhook: %w", event.Topic, err)
		}
	}

	if !handled {
		d.logger.Debug().
			Str("topic", event.Topic).
			Str("shop", event.Shop).
			Msg("No handler registered for webhook topic")
	}
	return nil
}

// Run consumes the event bus until ctx is cancelled, dispatching each
// event. Handler failures are logged, not fatal; the delivery was already
// acknowledged to Shopify when it was published.
func (d *WebhookDispatcher) Run(ctx context.Context, bus ports.EventBus) error {
	return bus.Subscribe(ctx, func(ctx context.Context, event *domain.WebhookEvent) {
		if err := d.Dispatch(ctx, event); err != nil {
			d.logger.Error().
				Err(err).
				Str("topic", event.Topic).
				Str("shop", event.Shop).
				Msg("Failed to dispatch webhook event")
		}
	})
}

package application

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopify-mcp-layer/internal/domain"
)

type topicHandler struct {
	topic   string
	handled []*domain.WebhookEvent
	err     error
}

func (h *topicHandler) CanHandle(topic string) bool { return topic == h.topic }

func (h *topicHandler) Handle(ctx context.Context, event *domain.WebhookEvent) error {
	h.handled = append(h.handled, event)
	return h.err
}

func TestDispatchRoutesByTopic(t *testing.T) {
	dispatcher := NewWebhookDispatcher(zerolog.Nop())
	orders := &topicHandler{topic: "orders/create"}
	uninstalls := &topicHandler{topic: "app/uninstalled"}
	dispatcher.RegisterHandler(orders)
	dispatcher.RegisterHandler(uninstalls)

	event := &domain.WebhookEvent{Topic: "app/uninstalled", Shop: "demo.myshopify.com"}
	require.NoError(t, dispatcher.Dispatch(context.Background(), event))

	assert.Empty(t, orders.handled)
	require.Len(t, uninstalls.handled, 1)
	assert.Equal(t, "demo.myshopify.com", uninstalls.handled[0].Shop)
}

func TestDispatchUnclaimedTopicSucceeds(t *testing.T) {
	dispatcher := NewWebhookDispatcher(zerolog.Nop())
	dispatcher.RegisterHandler(&topicHandler{topic: "orders/create"})

	err := dispatcher.Dispatch(context.Background(), &domain.WebhookEvent{Topic: "themes/publish"})
	assert.NoError(t, err)
}

func TestDispatchPropagatesHandlerError(t *testing.T) {
	dispatcher := NewWebhookDispatcher(zerolog.Nop())
	dispatcher.RegisterHandler(&topicHandler{topic: "orders/create", err: assert.AnError})

	err := dispatcher.Dispatch(context.Background(), &domain.WebhookEvent{Topic: "orders/create"})
	assert.ErrorIs(t, err, assert.AnError)
}

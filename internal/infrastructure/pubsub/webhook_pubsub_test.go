package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopify-mcp-layer/internal/domain"
)

func newTestBus(t *testing.T) *WebhookPubSub {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewWebhookPubSub(client, zerolog.Nop())
}

func TestPublishReachesSubscriber(t *testing.T) {
	bus := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan *domain.WebhookEvent, 1)
	ready := make(chan struct{})
	go func() {
		close(ready)
		_ = bus.Subscribe(ctx, func(ctx context.Context, event *domain.WebhookEvent) {
			received <- event
		})
	}()
	<-ready
	// Give the subscription a moment to register before publishing.
	time.Sleep(50 * time.Millisecond)

	event := &domain.WebhookEvent{
		Topic:    "app/uninstalled",
		Shop:     "demo.myshopify.com",
		Payload:  []byte(`{"domain":"demo.myshopify.com"}`),
		Verified: true,
	}
	require.NoError(t, bus.Publish(ctx, event))

	select {
	case got := <-received:
		assert.Equal(t, "app/uninstalled", got.Topic)
		assert.Equal(t, "demo.myshopify.com", got.Shop)
		assert.True(t, got.Verified)
	case <-time.After(2 * time.Second):
		t.Fatal("event never reached the subscriber")
	}
}

func TestSubscribeStopsOnCancel(t *testing.T) {
	bus := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- bus.Subscribe(ctx, func(ctx context.Context, event *domain.WebhookEvent) {})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe did not return after cancellation")
	}
}

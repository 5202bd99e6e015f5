package redisstore

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

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionStore(client, zerolog.Nop()), mr
}

func TestSaveAndConsume(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	session := &domain.Session{
		State:     "abc123",
		Shop:      "demo.myshopify.com",
		Scopes:    []string{"read_products"},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().UTC().Add(10 * time.Minute).Truncate(time.Second),
	}
	require.NoError(t, store.Save(ctx, session, 10*time.Minute))

	got, err := store.Consume(ctx, "abc123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.Shop, got.Shop)
	assert.Equal(t, session.Scopes, got.Scopes)
}

func TestConsumeIsSingleUse(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	session := &domain.Session{State: "once", Shop: "demo.myshopify.com"}
	require.NoError(t, store.Save(ctx, session, time.Minute))

	first, err := store.Consume(ctx, "once")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := store.Consume(ctx, "once")
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestConsumeAfterExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	session := &domain.Session{State: "stale", Shop: "demo.myshopify.com"}
	require.NoError(t, store.Save(ctx, session, time.Minute))

	mr.FastForward(2 * time.Minute)

	got, err := store.Consume(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestConsumeUnknownState(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Consume(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.Nil(t, got)
}

package webhook_handlers

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopify-mcp-layer/internal/domain"
)

type fakeIntegrations struct {
	integrations []*domain.Integration
}

func (f *fakeIntegrations) Create(ctx context.Context, integration *domain.Integration) error {
	f.integrations = append(f.integrations, integration)
	return nil
}

func (f *fakeIntegrations) GetByKey(ctx context.Context, key string) (*domain.Integration, error) {
	return nil, nil
}

func (f *fakeIntegrations) GetByShop(ctx context.Context, shopDomain string) (*domain.Integration, error) {
	return nil, nil
}

func (f *fakeIntegrations) Delete(ctx context.Context, key string) error { return nil }

func (f *fakeIntegrations) DeleteByShop(ctx context.Context, shopDomain string) (int64, error) {
	var kept []*domain.Integration
	var deleted int64
	for _, integration := range f.integrations {
		if integration.ShopDomain == shopDomain {
			deleted++
			continue
		}
		kept = append(kept, integration)
	}
	f.integrations = kept
	return deleted, nil
}

func TestHandleDeletesShopIntegrations(t *testing.T) {
	repo := &fakeIntegrations{integrations: []*domain.Integration{
		{Key: "a", ShopDomain: "gone.myshopify.com"},
		{Key: "b", ShopDomain: "gone.myshopify.com"},
		{Key: "c", ShopDomain: "stays.myshopify.com"},
	}}
	handler := NewAppUninstalledHandler(repo, zerolog.Nop())

	event := &domain.WebhookEvent{
		Topic: "app/uninstalled",
		Shop:  "gone.myshopify.com",
	}
	require.NoError(t, handler.Handle(context.Background(), event))

	require.Len(t, repo.integrations, 1)
	assert.Equal(t, "stays.myshopify.com", repo.integrations[0].ShopDomain)
}

func TestHandleFallsBackToPayloadDomain(t *testing.T) {
	repo := &fakeIntegrations{integrations: []*domain.Integration{
		{Key: "a", ShopDomain: "gone.myshopify.com"},
	}}
	handler := NewAppUninstalledHandler(repo, zerolog.Nop())

	event := &domain.WebhookEvent{
		Topic:   "app/uninstalled",
		Payload: []byte(`{"myshopify_domain":"gone.myshopify.com"}`),
	}
	require.NoError(t, handler.Handle(context.Background(), event))
	assert.Empty(t, repo.integrations)
}

func TestHandleWithoutShopFails(t *testing.T) {
	handler := NewAppUninstalledHandler(&fakeIntegrations{}, zerolog.Nop())

	event := &domain.WebhookEvent{Topic: "app/uninstalled", Payload: []byte(`{}`)}
	err := handler.Handle(context.Background(), event)
	assert.Error(t, err)
}

func TestCanHandle(t *testing.T) {
	handler := NewAppUninstalledHandler(&fakeIntegrations{}, zerolog.Nop())
	assert.True(t, handler.CanHandle("app/uninstalled"))
	assert.False(t, handler.CanHandle("orders/create"))
}

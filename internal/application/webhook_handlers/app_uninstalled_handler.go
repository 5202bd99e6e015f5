// Package webhook_handlers holds the consumers wired into the webhook
// dispatcher at startup.
package webhook_handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/domain"
	"shopify-mcp-layer/internal/ports"
)

// AppUninstalledHandler removes a shop's stored integrations when the
// merchant uninstalls the app. The tokens are dead at that point; keeping
// them would only let callers fail with stale credentials.
type AppUninstalledHandler struct {
	integrations ports.IntegrationRepository
	logger       zerolog.Logger
}

// NewAppUninstalledHandler creates a new app uninstalled webhook handler
func NewAppUninstalledHandler(integrations ports.IntegrationRepository, logger zerolog.Logger) *AppUninstalledHandler {
	return &AppUninstalledHandler{integrations: integrations, logger: logger}
}

// CanHandle returns true if this handler can process the given topic
func (h *AppUninstalledHandler) CanHandle(topic string) bool {
	return topic == "app/uninstalled"
}

// Handle deletes every integration stored for the uninstalling shop.
func (h *AppUninstalledHandler) Handle(ctx context.Context, event *domain.WebhookEvent) error {
	shopDomain := event.Shop
	if shopDomain == "" {
		shopDomain = shopFromPayload(event.Payload)
	}
	if shopDomain == "" {
		return fmt.Errorf("app uninstalled event carries no shop domain")
	}

	deleted, err := h.integrations.DeleteByShop(ctx, shopDomain)
	if err != nil {
		h.logger.Error().Err(err).Str("shop", shopDomain).Msg("Failed to delete integrations for uninstalled shop")
		return err
	}

	h.logger.Info().
		Str("shop", shopDomain).
		Int64("deleted", deleted).
		Msg("App uninstalled - integrations removed")
	return nil
}

// shopFromPayload pulls the shop domain out of the delivery body. The
// uninstall payload is the shop resource itself.
func shopFromPayload(payload []byte) string {
	var shop map[string]any
	if err := json.Unmarshal(payload, &shop); err != nil {
		return ""
	}
	if v, ok := shop["myshopify_domain"].(string); ok && v != "" {
		return v
	}
	if v, ok := shop["domain"].(string); ok {
		return v
	}
	return ""
}

package api

import (
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/application"
	"shopify-mcp-layer/internal/domain"
	"shopify-mcp-layer/internal/ports"
)

// webhookHandler verifies one Shopify delivery and publishes it to the
// event bus. Consumers run detached from the HTTP lifecycle, so the
// response only acknowledges receipt.
func webhookHandler(integrations *application.IntegrationService, events ports.EventBus, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if integrations == nil || !integrations.Configured() {
			writeError(w, http.StatusNotFound, "webhooks are not configured")
			return
		}

		topic := r.Header.Get("X-Shopify-Topic")
		if topic == "" {
			writeError(w, http.StatusBadRequest, "X-Shopify-Topic header is required")
			return
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read request body")
			return
		}
		defer r.Body.Close()

		hmacHeader := r.Header.Get("X-Shopify-Hmac-Sha256")
		if !integrations.VerifyWebhook(payload, hmacHeader) {
			logger.Warn().Str("topic", topic).Msg("Webhook signature verification failed")
			writeError(w, http.StatusUnauthorized, "invalid signature")
			return
		}

		event := &domain.WebhookEvent{
			Topic:      topic,
			Shop:       r.Header.Get("X-Shopify-Shop-Domain"),
			Payload:    payload,
			Verified:   true,
			ReceivedAt: time.Now().UTC(),
		}
		if err := events.Publish(r.Context(), event); err != nil {
			logger.Error().Err(err).Str("topic", topic).Msg("Failed to publish webhook event")
			// 500 asks Shopify to redeliver.
			writeError(w, http.StatusInternalServerError, "failed to process webhook")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"received": "true"})
	}
}

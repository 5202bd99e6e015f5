package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/application"
)

// oauthInstallHandler starts the install handshake and redirects the
// merchant to Shopify's authorize page.
func oauthInstallHandler(integrations *application.IntegrationService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if integrations == nil || !integrations.Configured() {
			writeError(w, http.StatusNotFound, "oauth is not configured")
			return
		}

		shop := r.URL.Query().Get("shop")
		if shop == "" {
			writeError(w, http.StatusBadRequest, "shop parameter is required")
			return
		}

		authURL, err := integrations.BeginInstall(r.Context(), shop)
		if err != nil {
			logger.Error().Err(err).Str("shop", shop).Msg("Failed to start OAuth install")
			writeError(w, http.StatusInternalServerError, "failed to start install")
			return
		}

		http.Redirect(w, r, authURL, http.StatusFound)
	}
}

// oauthCallbackHandler finishes the handshake and returns the integration
// key the caller authenticates with from then on.
func oauthCallbackHandler(integrations *application.IntegrationService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if integrations == nil || !integrations.Configured() {
			writeError(w, http.StatusNotFound, "oauth is not configured")
			return
		}

		integration, err := integrations.CompleteInstall(r.Context(), r.URL)
		if err != nil {
			logger.Warn().Err(err).Msg("OAuth callback rejected")
			writeError(w, http.StatusUnauthorized, "installation could not be completed")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"integrationKey": integration.Key,
			"shopDomain":     integration.ShopDomain,
			"apiVersion":     integration.APIVersion,
		})
	}
}

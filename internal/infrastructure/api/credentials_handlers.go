package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/application"
)

// configureCredentialsHandler stores a shop's credentials and hands back
// the integration key. The key appears only in this response.
func configureCredentialsHandler(credentials *application.CredentialsService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input application.ConfigureInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		integration, err := credentials.Configure(r.Context(), &input)
		if err != nil {
			if errors.Is(err, application.ErrMissingCredentials) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Error().Err(err).Msg("Failed to configure credentials")
			writeError(w, http.StatusInternalServerError, "failed to store credentials")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"integrationKey": integration.Key,
			"shopDomain":     integration.ShopDomain,
			"apiVersion":     integration.APIVersion,
			"createdAt":      integration.CreatedAt,
		})
	}
}

// getCredentialsHandler returns a masked view of the caller's integration.
func getCredentialsHandler(credentials *application.CredentialsService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integration, err := credentials.Get(r.Context())
		if err != nil {
			writeCredentialsError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"integrationKey": maskKey(integration.Key),
			"shopDomain":     integration.ShopDomain,
			"apiVersion":     integration.APIVersion,
			"createdAt":      integration.CreatedAt,
			"updatedAt":      integration.UpdatedAt,
		})
	}
}

// deleteCredentialsHandler removes the caller's integration.
func deleteCredentialsHandler(credentials *application.CredentialsService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := credentials.Delete(r.Context()); err != nil {
			writeCredentialsError(w, logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeCredentialsError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrMissingCredentials):
		writeError(w, http.StatusUnauthorized, "X-Integration-Key header is required")
	case errors.Is(err, application.ErrIntegrationNotFound):
		writeError(w, http.StatusNotFound, "integration not found")
	default:
		logger.Error().Err(err).Msg("Credentials operation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// maskKey keeps enough of the key to recognize it in logs and dashboards.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", 8) + key[len(key)-4:]
}

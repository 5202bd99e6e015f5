// Package api is the HTTP management surface: tenant onboarding, OAuth
// install, webhook intake, the REST proxy, and the MCP streamable
// transport, all on one chi router.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"shopify-mcp-layer/internal/application"
	"shopify-mcp-layer/internal/ports"
)

// Deps carries everything the router serves.
type Deps struct {
	Credentials  *application.CredentialsService
	Integrations *application.IntegrationService
	Proxy        *application.ProxyService
	Events       ports.EventBus
	MCP          http.Handler
	Metrics      http.Handler
	Logger       zerolog.Logger
}

// NewRouter builds the full route table.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics)
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, "./docs/swagger.json")
	})

	// MCP streamable transport; tenant headers are lifted into context by
	// the transport's own context func.
	if deps.MCP != nil {
		r.Handle("/mcp", deps.MCP)
		r.Handle("/mcp/*", deps.MCP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(tenantContext)

		r.Post("/credentials", configureCredentialsHandler(deps.Credentials, deps.Logger))
		r.Get("/credentials", getCredentialsHandler(deps.Credentials, deps.Logger))
		r.Delete("/credentials", deleteCredentialsHandler(deps.Credentials, deps.Logger))

		r.Get("/oauth/install", oauthInstallHandler(deps.Integrations, deps.Logger))
		r.Get("/oauth/callback", oauthCallbackHandler(deps.Integrations, deps.Logger))

		r.Post("/webhooks/shopify", webhookHandler(deps.Integrations, deps.Events, deps.Logger))

		proxy := NewRESTProxy(deps.Proxy, deps.Logger)
		r.HandleFunc("/shopify/*", proxy.HandleProxyRequest)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

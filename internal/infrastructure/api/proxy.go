package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/application"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

const proxyPrefix = "/api/v1/shopify/"

// RESTProxy replays authenticated Admin API calls through the request
// executor. Responses come back internal-cased, like tool output.
type RESTProxy struct {
	proxy  *application.ProxyService
	logger zerolog.Logger
}

// NewRESTProxy creates a new REST proxy handler.
func NewRESTProxy(proxy *application.ProxyService, logger zerolog.Logger) *RESTProxy {
	return &RESTProxy{proxy: proxy, logger: logger}
}

// HandleProxyRequest forwards any verb on /api/v1/shopify/* upstream.
func (p *RESTProxy) HandleProxyRequest(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, proxyPrefix)
	if path == "" || path == r.URL.Path {
		writeError(w, http.StatusBadRequest, "missing resource path")
		return
	}

	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read request body")
			return
		}
		defer r.Body.Close()
	}

	res, err := p.proxy.Forward(r.Context(), r.Method, path, r.URL.Query(), body)
	if err != nil {
		p.writeUpstreamError(w, err)
		return
	}

	if res.NoContent() {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, res.Status, res.Data)
}

// writeUpstreamError maps the typed taxonomy back onto HTTP statuses so
// the proxy behaves like the platform it fronts.
func (p *RESTProxy) writeUpstreamError(w http.ResponseWriter, err error) {
	var rateLimited *shopify.RateLimitError
	if errors.As(err, &rateLimited) {
		w.Header().Set("Retry-After", strconv.Itoa(rateLimited.RetryAfter))
		writeError(w, http.StatusTooManyRequests, err.Error())
		return
	}

	var authFailed *shopify.AuthenticationError
	if errors.As(err, &authFailed) {
		writeError(w, authFailed.Status, err.Error())
		return
	}

	var apiErr *shopify.APIError
	if errors.As(err, &apiErr) {
		writeError(w, apiErr.Status, err.Error())
		return
	}

	if errors.Is(err, application.ErrMissingCredentials) || errors.Is(err, application.ErrIntegrationNotFound) {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	p.logger.Error().Err(err).Msg("Proxy request failed")
	writeError(w, http.StatusBadGateway, "upstream request failed")
}

package application

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/domain"
	"shopify-mcp-layer/internal/ports"
)

// sessionTTL bounds the OAuth handshake window.
const sessionTTL = 10 * time.Minute

// IntegrationService runs the OAuth install flow: it hands the merchant to
// Shopify's authorize page, verifies the callback, exchanges the code for a
// permanent access token, and stores the result as an Integration the
// caller addresses by key from then on.
type IntegrationService struct {
	app         goshopify.App
	scopes      []string
	sessions    ports.SessionStore
	credentials *CredentialsService
	logger      zerolog.Logger
}

// NewIntegrationService creates a new integration service. appURL is the
// public base URL this service is reachable at; the OAuth redirect goes to
// its /api/v1/oauth/callback route.
func NewIntegrationService(
	apiKey, apiSecret, appURL string,
	scopes []string,
	sessions ports.SessionStore,
	credentials *CredentialsService,
	logger zerolog.Logger,
) *IntegrationService {
	return &IntegrationService{
		app: goshopify.App{
			ApiKey:      apiKey,
			ApiSecret:   apiSecret,
			RedirectUrl: strings.TrimSuffix(appURL, "/") + "/api/v1/oauth/callback",
			Scope:       strings.Join(scopes, ","),
		},
		scopes:      scopes,
		sessions:    sessions,
		credentials: credentials,
		logger:      logger,
	}
}

// Configured reports whether app credentials were supplied. The OAuth
// routes refuse politely when they were not.
func (s *IntegrationService) Configured() bool {
	return s.app.ApiKey != "" && s.app.ApiSecret != ""
}

// BeginInstall starts the handshake for a shop and returns the authorize
// URL to redirect the merchant to. The CSRF state nonce is stored with a
// TTL and consumed exactly once by the callback.
func (s *IntegrationService) BeginInstall(ctx context.Context, shop string) (string, error) {
	shop = strings.TrimSpace(shop)
	if shop == "" {
		return "", fmt.Errorf("shop parameter is required")
	}

	state, err := domain.NewOAuthState()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		State:     state,
		Shop:      shop,
		Scopes:    s.scopes,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := s.sessions.Save(ctx, session, sessionTTL); err != nil {
		return "", fmt.Errorf("failed to save oauth session: %w", err)
	}

	authURL, err := s.app.AuthorizeUrl(shop, state)
	if err != nil {
		return "", fmt.Errorf("failed to build authorize url: %w", err)
	}

	s.logger.Info().Str("shop", shop).Msg("OAuth install started")
	return authURL, nil
}

// CompleteInstall verifies the callback's HMAC and state nonce, exchanges
// the code for an access token, and stores the integration. The returned
// integration carries the key the caller authenticates with from now on.
func (s *IntegrationService) CompleteInstall(ctx context.Context, callbackURL *url.URL) (*domain.Integration, error) {
	ok, err := s.app.VerifyAuthorizationURL(callbackURL)
	if err != nil || !ok {
		return nil, fmt.Errorf("callback signature verification failed")
	}

	query := callbackURL.Query()
	shop := query.Get("shop")
	code := query.Get("code")
	state := query.Get("state")
	if shop == "" || code == "" || state == "" {
		return nil, fmt.Errorf("callback is missing required parameters")
	}

	session, err := s.sessions.Consume(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to load oauth session: %w", err)
	}
	if session == nil || session.Shop != shop {
		return nil, fmt.Errorf("invalid or expired oauth state")
	}

	token, err := s.app.GetAccessToken(ctx, shop, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange token: %w", err)
	}

	integration, err := s.credentials.Configure(ctx, &ConfigureInput{
		ShopDomain:  shop,
		AccessToken: token,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("shop", shop).Msg("OAuth install completed")
	return integration, nil
}

// VerifyWebhook checks a delivery's X-Shopify-Hmac-Sha256 signature
// against the app secret.
func (s *IntegrationService) VerifyWebhook(payload []byte, hmacHeader string) bool {
	return s.app.VerifyMessage(string(payload), hmacHeader)
}

package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/domain"
	"shopify-mcp-layer/internal/ports"
)

// ErrMissingCredentials means no credential source produced usable tenant
// credentials for this request.
var ErrMissingCredentials = errors.New("missing shopify credentials")

// ErrIntegrationNotFound means the caller's integration key has no stored
// integration behind it.
var ErrIntegrationNotFound = errors.New("integration not found")

// CredentialsService manages stored integrations and resolves the tenant
// credentials for each request. Resolution order: integration key, direct
// per-request credentials, then service-level defaults from the environment.
type CredentialsService struct {
	integrations ports.IntegrationRepository
	encryptor    ports.Encryptor
	defaults     domain.Credentials
	logger       zerolog.Logger
}

// NewCredentialsService creates a new credentials service. The repository
// and encryptor may be nil in stdio deployments, which resolve from context
// and defaults only.
func NewCredentialsService(
	integrations ports.IntegrationRepository,
	encryptor ports.Encryptor,
	defaults domain.Credentials,
	logger zerolog.Logger,
) *CredentialsService {
	return &CredentialsService{
		integrations: integrations,
		encryptor:    encryptor,
		defaults:     defaults,
		logger:       logger,
	}
}

// ConfigureInput carries the credentials to store for a shop.
type ConfigureInput struct {
	ShopDomain  string `json:"shop_domain"`
	AccessToken string `json:"access_token"`
	APIVersion  string `json:"api_version"`
}

// Configure stores credentials for a shop and returns the integration with
// its freshly generated key. The key is only ever visible in this response;
// the access token is encrypted before persistence.
func (s *CredentialsService) Configure(ctx context.Context, input *ConfigureInput) (*domain.Integration, error) {
	if s.integrations == nil {
		return nil, fmt.Errorf("integration storage is not configured")
	}

	creds := domain.Credentials{
		ShopDomain:  strings.TrimSpace(input.ShopDomain),
		AccessToken: strings.TrimSpace(input.AccessToken),
		APIVersion:  strings.TrimSpace(input.APIVersion),
	}.WithDefaults()
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingCredentials, err)
	}

	key, err := domain.NewIntegrationKey()
	if err != nil {
		return nil, err
	}
	encrypted, err := s.encryptor.Encrypt(creds.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}

	now := time.Now().UTC()
	integration := &domain.Integration{
		Key:         key,
		ShopDomain:  creds.ShopDomain,
		AccessToken: encrypted,
		APIVersion:  creds.APIVersion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.integrations.Create(ctx, integration); err != nil {
		return nil, fmt.Errorf("failed to store integration: %w", err)
	}

	s.logger.Info().Str("shopDomain", integration.ShopDomain).Msg("Integration created successfully")
	return integration, nil
}

// Get returns the integration behind the caller's integration key. The
// access token stays encrypted and is never serialized.
func (s *CredentialsService) Get(ctx context.Context) (*domain.Integration, error) {
	key := domain.GetIntegrationKeyFromContext(ctx)
	if key == "" {
		return nil, ErrMissingCredentials
	}
	if s.integrations == nil {
		return nil, ErrIntegrationNotFound
	}

	integration, err := s.integrations.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load integration: %w", err)
	}
	if integration == nil {
		return nil, ErrIntegrationNotFound
	}
	return integration, nil
}

// Delete removes the integration behind the caller's integration key.
func (s *CredentialsService) Delete(ctx context.Context) error {
	integration, err := s.Get(ctx)
	if err != nil {
		return err
	}

	if err := s.integrations.Delete(ctx, integration.Key); err != nil {
		s.logger.Error().Err(err).Str("shopDomain", integration.ShopDomain).Msg("Failed to delete integration")
		return fmt.Errorf("failed to delete integration: %w", err)
	}

	s.logger.Info().Str("shopDomain", integration.ShopDomain).Msg("Integration deleted successfully")
	return nil
}

// Resolve produces the tenant credentials for this request. First match
// wins: stored integration by key, direct credentials from the request,
// then environment defaults.
func (s *CredentialsService) Resolve(ctx context.Context) (domain.Credentials, error) {
	if key := domain.GetIntegrationKeyFromContext(ctx); key != "" {
		return s.resolveKey(ctx, key)
	}

	if creds, ok := domain.GetCredentialsFromContext(ctx); ok {
		if err := creds.Validate(); err == nil {
			return creds.WithDefaults(), nil
		}
	}

	if err := s.defaults.Validate(); err == nil {
		return s.defaults.WithDefaults(), nil
	}

	return domain.Credentials{}, ErrMissingCredentials
}

func (s *CredentialsService) resolveKey(ctx context.Context, key string) (domain.Credentials, error) {
	if s.integrations == nil {
		return domain.Credentials{}, ErrIntegrationNotFound
	}

	integration, err := s.integrations.GetByKey(ctx, key)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("failed to load integration: %w", err)
	}
	if integration == nil {
		return domain.Credentials{}, ErrIntegrationNotFound
	}

	token, err := s.encryptor.Decrypt(integration.AccessToken)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("failed to decrypt access token: %w", err)
	}

	return domain.Credentials{
		ShopDomain:  integration.ShopDomain,
		AccessToken: token,
		APIVersion:  integration.APIVersion,
	}.WithDefaults(), nil
}

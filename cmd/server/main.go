package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"shopify-mcp-layer/internal/application"
	"shopify-mcp-layer/internal/application/webhook_handlers"
	"shopify-mcp-layer/internal/config"
	"shopify-mcp-layer/internal/domain"
	"shopify-mcp-layer/internal/infrastructure/api"
	"shopify-mcp-layer/internal/infrastructure/encryption"
	"shopify-mcp-layer/internal/infrastructure/mcpserver"
	"shopify-mcp-layer/internal/infrastructure/metrics"
	"shopify-mcp-layer/internal/infrastructure/pubsub"
	"shopify-mcp-layer/internal/infrastructure/redisstore"
	"shopify-mcp-layer/internal/infrastructure/repository"
	"shopify-mcp-layer/internal/infrastructure/shopify"
	"shopify-mcp-layer/internal/tools"
)

const version = "1.0.0"

func main() {
	loadErr := godotenv.Load()

	cfg := config.Load()

	// stdout carries the protocol stream on stdio, so logs go to stderr.
	logOut := os.Stdout
	if cfg.Transport == config.TransportStdio {
		logOut = os.Stderr
	}
	logger := zerolog.New(logOut).With().Timestamp().Logger()
	if loadErr != nil {
		logger.Warn().Msg("No .env file found, using environment as-is")
	}

	m := metrics.New()
	clients := func(creds domain.Credentials) *shopify.Client {
		return shopify.NewClient(creds,
			shopify.WithLogger(logger),
			shopify.WithObserver(m.Observer()),
		)
	}
	registry := tools.NewRegistry()

	switch cfg.Transport {
	case config.TransportStdio:
		runStdio(cfg, registry, clients, m, logger)
	case config.TransportHTTP:
		runHTTP(cfg, registry, clients, m, logger)
	default:
		logger.Fatal().Str("transport", cfg.Transport).Msg("Unknown MCP_TRANSPORT, expected stdio or http")
	}
}

// runStdio serves a single tenant over stdin/stdout. No stores are needed:
// credentials come from the environment.
func runStdio(cfg config.Config, registry *tools.Registry, clients shopify.ClientFactory, m *metrics.Metrics, logger zerolog.Logger) {
	credentials := application.NewCredentialsService(nil, nil, cfg.DefaultCredentials, logger)

	srv := mcpserver.New(registry, version, mcpserver.Deps{
		Resolver: credentials,
		Clients:  clients,
		Observe:  m.ObserveToolCall,
		Logger:   logger,
	})

	logger.Info().Int("tools", registry.Len()).Msg("Starting MCP server on stdio")
	if err := mcpserver.ServeStdio(srv, cfg.DefaultCredentials); err != nil {
		logger.Fatal().Err(err).Msg("Stdio server failed")
	}
}

// runHTTP serves the multi-tenant deployment: MCP over streamable HTTP plus
// the management REST surface, backed by Mongo and Redis.
func runHTTP(cfg config.Config, registry *tools.Registry, clients shopify.ClientFactory, m *metrics.Metrics, logger zerolog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.EncryptionKey == "" {
		logger.Fatal().Msg("ENCRYPTION_KEY environment variable is required")
	}
	encryptor, err := encryption.NewService(cfg.EncryptionKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}

	mongoClient, err := repository.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(context.Background())
	integrations := repository.NewMongoIntegrationRepository(mongoClient.Database(cfg.MongoDatabase))

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	sessions := redisstore.NewSessionStore(redisClient, logger)
	events := pubsub.NewWebhookPubSub(redisClient, logger)

	credentials := application.NewCredentialsService(integrations, encryptor, cfg.DefaultCredentials, logger)
	integrationService := application.NewIntegrationService(
		cfg.ShopifyAPIKey, cfg.ShopifyAPISecret, cfg.AppURL,
		cfg.OAuthScopes, sessions, credentials, logger,
	)
	proxy := application.NewProxyService(credentials, clients, logger)

	dispatcher := application.NewWebhookDispatcher(logger)
	dispatcher.RegisterHandler(webhook_handlers.NewAppUninstalledHandler(integrations, logger))
	go func() {
		if err := dispatcher.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Webhook consumer stopped")
		}
	}()

	mcpSrv := mcpserver.New(registry, version, mcpserver.Deps{
		Resolver: credentials,
		Clients:  clients,
		Observe:  m.ObserveToolCall,
		Logger:   logger,
	})

	router := api.NewRouter(api.Deps{
		Credentials:  credentials,
		Integrations: integrationService,
		Proxy:        proxy,
		Events:       events,
		MCP:          mcpserver.NewHTTPHandler(mcpSrv),
		Metrics:      m.Handler(),
		Logger:       logger,
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	go func() {
		logger.Info().Str("port", cfg.Port).Int("tools", registry.Len()).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

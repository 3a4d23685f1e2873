package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"audiooasis-api/app/config"
	"audiooasis-api/app/driver/oauth"
	"audiooasis-api/app/driver/postgres"
	"audiooasis-api/app/driver/token"
	"audiooasis-api/app/gateway"
	"audiooasis-api/app/port"
	"audiooasis-api/app/rest"
	"audiooasis-api/app/usecase"
	"audiooasis-api/app/utils/security"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	TokenService port.TokenService

	// Gateways
	OAuthGateway port.OAuthGateway

	// Usecases
	AuthUsecase     port.AuthUsecase
	OAuthUsecase    port.OAuthUsecase
	FavoriteUsecase port.FavoriteUsecase
	HistoryUsecase  port.HistoryUsecase
	PlaylistUsecase port.PlaylistUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Repositories
	pool := container.DB.Pool()
	userRepository := postgres.NewUserRepository(pool, logger)
	favoriteRepository := postgres.NewFavoriteRepository(pool, logger)
	historyRepository := postgres.NewHistoryRepository(pool, logger)
	playlistRepository := postgres.NewPlaylistRepository(pool, logger)

	// Credential and token services
	hasher := security.NewPasswordHasher()
	container.TokenService = token.NewJWTService(token.Config{
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL,
	})

	// OAuth providers. Only the configured ones are registered; the
	// rest answer 501 at the HTTP surface.
	registry := oauth.NewRegistry(configuredProviders(cfg)...)
	container.OAuthGateway = gateway.NewOAuthGateway(registry, logger)

	// Usecases
	container.AuthUsecase = usecase.NewAuthUsecase(userRepository, hasher, container.TokenService, logger)
	container.OAuthUsecase = usecase.NewOAuthUsecase(container.OAuthGateway, userRepository, container.TokenService, cfg.FrontendURL, logger)
	container.FavoriteUsecase = usecase.NewFavoriteUsecase(favoriteRepository, logger)
	container.HistoryUsecase = usecase.NewHistoryUsecase(historyRepository, logger)
	container.PlaylistUsecase = usecase.NewPlaylistUsecase(playlistRepository, logger)

	logger.Info("Container initialized with full dependency stack",
		"oauth_providers", registry.Names())

	return container, nil
}

// configuredProviders builds adapters for every provider whose client
// credentials are present in the environment.
func configuredProviders(cfg *config.Config) []port.OAuthProvider {
	var providers []port.OAuthProvider

	if cfg.Google.Configured() {
		providers = append(providers, oauth.NewGoogleProvider(
			oauth.Credentials{ClientID: cfg.Google.ClientID, ClientSecret: cfg.Google.ClientSecret},
			cfg.OAuthRedirectURL("google"),
		))
	}
	if cfg.GitHub.Configured() {
		providers = append(providers, oauth.NewGitHubProvider(
			oauth.Credentials{ClientID: cfg.GitHub.ClientID, ClientSecret: cfg.GitHub.ClientSecret},
			cfg.OAuthRedirectURL("github"),
		))
	}
	if cfg.Discord.Configured() {
		providers = append(providers, oauth.NewDiscordProvider(
			oauth.Credentials{ClientID: cfg.Discord.ClientID, ClientSecret: cfg.Discord.ClientSecret},
			cfg.OAuthRedirectURL("discord"),
		))
	}

	return providers
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:          c.Logger,
		AuthUsecase:     c.AuthUsecase,
		OAuthUsecase:    c.OAuthUsecase,
		FavoriteUsecase: c.FavoriteUsecase,
		HistoryUsecase:  c.HistoryUsecase,
		PlaylistUsecase: c.PlaylistUsecase,
		TokenService:    c.TokenService,
		HealthChecker:   c.DB,
		FrontendURL:     c.Config.FrontendURL,
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}

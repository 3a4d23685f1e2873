package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"audiooasis-api/app/port"
	"audiooasis-api/app/rest/handlers"
	custommw "audiooasis-api/app/rest/middleware"
	"audiooasis-api/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger          *slog.Logger
	AuthUsecase     port.AuthUsecase
	OAuthUsecase    port.OAuthUsecase
	FavoriteUsecase port.FavoriteUsecase
	HistoryUsecase  port.HistoryUsecase
	PlaylistUsecase port.PlaylistUsecase
	TokenService    port.TokenService
	HealthChecker   handlers.DatabaseHealthChecker
	FrontendURL     string
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	oauthHandler := handlers.NewOAuthHandler(config.OAuthUsecase, config.Logger)
	favoriteHandler := handlers.NewFavoriteHandler(config.FavoriteUsecase, config.Logger)
	historyHandler := handlers.NewHistoryHandler(config.HistoryUsecase, config.Logger)
	playlistHandler := handlers.NewPlaylistHandler(config.PlaylistUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecker, config.Logger)

	// Middleware
	authMiddleware := custommw.NewAuthMiddleware(config.TokenService, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.FrontendCORS(config.FrontendURL))
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// Health endpoints (no auth required)
	health := e.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	health.GET("/live", healthHandler.LivenessCheck)
	health.GET("/ready", healthHandler.ReadinessCheck)

	// Authentication endpoints
	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/callback/:provider", oauthHandler.Callback)
	auth.GET("/:provider", oauthHandler.Authorize)

	// Current user
	e.GET("/me", authHandler.Me, authMiddleware.RequireAuth())

	// Favorites
	favorites := e.Group("/favorites")
	favorites.Use(authMiddleware.RequireAuth())
	favorites.GET("", favoriteHandler.List)
	favorites.POST("", favoriteHandler.Add)
	favorites.DELETE("", favoriteHandler.Remove)
	favorites.PUT("/reorder", favoriteHandler.Reorder)

	// Listening history
	history := e.Group("/history")
	history.Use(authMiddleware.RequireAuth())
	history.POST("", historyHandler.Record)
	history.GET("", historyHandler.Recent)
	history.DELETE("", historyHandler.Clear)

	// Community playlists. Only the listing is public; detail reads
	// and mutations need a session.
	e.GET("/community/playlists", playlistHandler.List, authMiddleware.OptionalAuth())

	community := e.Group("/community/playlists")
	community.Use(authMiddleware.RequireAuth())
	community.GET("/:id", playlistHandler.Get)
	community.POST("", playlistHandler.Create)
	community.POST("/:id/like", playlistHandler.ToggleLike)
	community.DELETE("/:id", playlistHandler.Delete)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "Not found"})
	})

	return e
}

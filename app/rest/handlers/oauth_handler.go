package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// OAuthHandler handles the OAuth redirect and callback HTTP requests
type OAuthHandler struct {
	oauthUsecase port.OAuthUsecase
	logger       *slog.Logger
}

// NewOAuthHandler creates a new OAuth handler
func NewOAuthHandler(oauthUsecase port.OAuthUsecase, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{
		oauthUsecase: oauthUsecase,
		logger:       logger,
	}
}

// Authorize handles GET /auth/:provider by redirecting the browser to
// the provider's consent screen.
func (h *OAuthHandler) Authorize(c echo.Context) error {
	provider := c.Param("provider")

	authURL, err := h.oauthUsecase.AuthorizeURL(provider)
	if err != nil {
		if errors.Is(err, domain.ErrProviderNotConfigured) {
			return c.JSON(http.StatusNotImplemented, ErrorResponse{
				Error: fmt.Sprintf("%s OAuth not configured", provider),
			})
		}
		h.logger.Error("authorize redirect failed", "error", err, "provider", provider)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /auth/callback/:provider. The usecase absorbs
// every failure into a frontend redirect, so this always answers 302.
func (h *OAuthHandler) Callback(c echo.Context) error {
	provider := c.Param("provider")
	code := c.QueryParam("code")
	providerErr := c.QueryParam("error")

	redirectURL := h.oauthUsecase.HandleCallback(c.Request().Context(), provider, code, providerErr)

	return c.Redirect(http.StatusFound, redirectURL)
}

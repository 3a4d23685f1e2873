package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// AuthHandler handles password-based authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// SignupRequest is the POST /auth/signup body
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the POST /auth/login body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse carries a fresh session token and its user
type SessionResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	user, token, err := h.authUsecase.Signup(c.Request().Context(), req.Email, req.Username, req.Password)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		case errors.Is(err, domain.ErrDuplicateUser):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "Email or username already taken"})
		default:
			h.logger.Error("signup failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
	}

	return c.JSON(http.StatusCreated, SessionResponse{Token: token, User: newUserPayload(user)})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	user, token, err := h.authUsecase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		default:
			h.logger.Error("login failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
	}

	return c.JSON(http.StatusOK, SessionResponse{Token: token, User: newUserPayload(user)})
}

// Me handles GET /me for the authenticated user
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)

	user, err := h.authUsecase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// The token outlived its account.
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		}
		h.logger.Error("profile lookup failed", "error", err, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]UserPayload{"user": newUserPayload(user)})
}

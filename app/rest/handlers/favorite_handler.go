package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// FavoriteHandler handles favorites HTTP requests
type FavoriteHandler struct {
	favorites port.FavoriteUsecase
	logger    *slog.Logger
}

// NewFavoriteHandler creates a new favorites handler
func NewFavoriteHandler(favorites port.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favorites: favorites,
		logger:    logger,
	}
}

// AddFavoriteRequest is the POST /favorites body
type AddFavoriteRequest struct {
	TrackSrc      string `json:"track_src" validate:"required"`
	TrackTitle    string `json:"track_title" validate:"required"`
	TrackCategory string `json:"track_category"`
}

// RemoveFavoriteRequest is the DELETE /favorites body
type RemoveFavoriteRequest struct {
	TrackSrc string `json:"track_src" validate:"required"`
}

// ReorderRequest is the PUT /favorites/reorder body. An empty order
// array is valid; only a missing one is rejected.
type ReorderRequest struct {
	Order []domain.FavoritePosition `json:"order" validate:"required"`
}

// List handles GET /favorites
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)

	favorites, err := h.favorites.List(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("favorites list failed", "error", err, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}

	return c.JSON(http.StatusOK, map[string][]domain.Favorite{"favorites": favorites})
}

// Add handles POST /favorites
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "track_src and track_title are required"})
	}

	favorite, err := h.favorites.Add(c.Request().Context(), userID, req.TrackSrc, req.TrackTitle, req.TrackCategory)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		case errors.Is(err, domain.ErrDuplicate):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "Track already in favorites"})
		default:
			h.logger.Error("favorite add failed", "error", err, "user_id", userID)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":       favorite.ID,
		"position": favorite.Position,
	})
}

// Remove handles DELETE /favorites
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)

	var req RemoveFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "track_src is required"})
	}

	if err := h.favorites.Remove(c.Request().Context(), userID, req.TrackSrc); err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Favorite not found"})
		default:
			h.logger.Error("favorite remove failed", "error", err, "user_id", userID)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
	}

	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

// Reorder handles PUT /favorites/reorder
func (h *FavoriteHandler) Reorder(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)

	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "order must be an array of { id, position }"})
	}

	if err := h.favorites.Reorder(c.Request().Context(), userID, req.Order); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		}
		h.logger.Error("favorite reorder failed", "error", err, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// HistoryHandler handles listening-history HTTP requests
type HistoryHandler struct {
	history port.HistoryUsecase
	logger  *slog.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(history port.HistoryUsecase, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		history: history,
		logger:  logger,
	}
}

// RecordHistoryRequest is the POST /history body
type RecordHistoryRequest struct {
	TrackSrc      string `json:"track_src" validate:"required"`
	TrackTitle    string `json:"track_title" validate:"required"`
	TrackCategory string `json:"track_category"`
}

// HistoryPage is the GET /history response
type HistoryPage struct {
	History []domain.ListenEvent `json:"history"`
	Page    int                  `json:"page"`
	Limit   int                  `json:"limit"`
}

// Record handles POST /history
func (h *HistoryHandler) Record(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)

	var req RecordHistoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "track_src and track_title are required"})
	}

	if err := h.history.Record(c.Request().Context(), userID, req.TrackSrc, req.TrackTitle, req.TrackCategory); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		}
		h.logger.Error("history record failed", "error", err, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusCreated, OKResponse{OK: true})
}

// Recent handles GET /history
func (h *HistoryHandler) Recent(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	page := queryInt(c, "page")
	limit := queryInt(c, "limit")

	events, page, limit, err := h.history.Recent(c.Request().Context(), userID, page, limit)
	if err != nil {
		h.logger.Error("history list failed", "error", err, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
	if events == nil {
		events = []domain.ListenEvent{}
	}

	return c.JSON(http.StatusOK, HistoryPage{History: events, Page: page, Limit: limit})
}

// Clear handles DELETE /history
func (h *HistoryHandler) Clear(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)

	if err := h.history.Clear(c.Request().Context(), userID); err != nil {
		h.logger.Error("history clear failed", "error", err, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

// queryInt reads an integer query parameter, returning 0 for anything
// unparseable so the usecase clamps pick the defaults.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}

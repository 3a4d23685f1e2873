package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// PlaylistHandler handles community playlist HTTP requests
type PlaylistHandler struct {
	playlists port.PlaylistUsecase
	logger    *slog.Logger
}

// NewPlaylistHandler creates a new playlist handler
func NewPlaylistHandler(playlists port.PlaylistUsecase, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlists: playlists,
		logger:    logger,
	}
}

// CreatePlaylistRequest is the POST /community/playlists body
type CreatePlaylistRequest struct {
	Name        string                 `json:"name" validate:"required,max=100"`
	Description string                 `json:"description"`
	Tracks      []domain.PlaylistTrack `json:"tracks"`
	Videos      []domain.PlaylistVideo `json:"videos"`
}

// PlaylistPage is the GET /community/playlists response
type PlaylistPage struct {
	Playlists []domain.Playlist `json:"playlists"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
}

// PlaylistDetail always serializes the entry arrays, even when empty.
type PlaylistDetail struct {
	domain.Playlist
	Tracks []domain.PlaylistTrack `json:"tracks"`
	Videos []domain.PlaylistVideo `json:"videos"`
}

// List handles GET /community/playlists. Anonymous requests are
// allowed; authenticated ones get liked_by_me flags.
func (h *PlaylistHandler) List(c echo.Context) error {
	viewerID, _ := c.Get("user_id").(string)
	sort := c.QueryParam("sort")
	page := queryInt(c, "page")
	limit := queryInt(c, "limit")

	playlists, page, limit, err := h.playlists.List(c.Request().Context(), viewerID, sort, page, limit)
	if err != nil {
		h.logger.Error("playlist list failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
	if playlists == nil {
		playlists = []domain.Playlist{}
	}

	return c.JSON(http.StatusOK, PlaylistPage{Playlists: playlists, Page: page, Limit: limit})
}

// Create handles POST /community/playlists
func (h *PlaylistHandler) Create(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)

	var req CreatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name is required (1-100 characters)"})
	}

	playlist, err := h.playlists.Create(c.Request().Context(), userID, req.Name, req.Description, req.Tracks, req.Videos)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		}
		h.logger.Error("playlist create failed", "error", err, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"id":   playlist.ID,
		"name": playlist.Name,
	})
}

// Get handles GET /community/playlists/:id
func (h *PlaylistHandler) Get(c echo.Context) error {
	viewerID, _ := c.Get("user_id").(string)
	playlistID := c.Param("id")

	playlist, err := h.playlists.Get(c.Request().Context(), playlistID, viewerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Playlist not found"})
		}
		h.logger.Error("playlist get failed", "error", err, "playlist_id", playlistID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
	detail := PlaylistDetail{Playlist: *playlist, Tracks: playlist.Tracks, Videos: playlist.Videos}
	if detail.Tracks == nil {
		detail.Tracks = []domain.PlaylistTrack{}
	}
	if detail.Videos == nil {
		detail.Videos = []domain.PlaylistVideo{}
	}

	return c.JSON(http.StatusOK, map[string]PlaylistDetail{"playlist": detail})
}

// ToggleLike handles POST /community/playlists/:id/like
func (h *PlaylistHandler) ToggleLike(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	playlistID := c.Param("id")

	liked, err := h.playlists.ToggleLike(c.Request().Context(), playlistID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Playlist not found"})
		}
		h.logger.Error("playlist like toggle failed", "error", err, "playlist_id", playlistID, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"liked": liked})
}

// Delete handles DELETE /community/playlists/:id
func (h *PlaylistHandler) Delete(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	playlistID := c.Param("id")

	if err := h.playlists.Delete(c.Request().Context(), playlistID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Playlist not found or not owned by you"})
		}
		h.logger.Error("playlist delete failed", "error", err, "playlist_id", playlistID, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// Playlist name bounds for the public API.
const playlistNameMaxLength = 100

// PlaylistUsecase implements the community playlist business logic
type PlaylistUsecase struct {
	playlists port.PlaylistRepository
	logger    *slog.Logger
}

// NewPlaylistUsecase creates a new PlaylistUsecase instance
func NewPlaylistUsecase(playlists port.PlaylistRepository, logger *slog.Logger) port.PlaylistUsecase {
	return &PlaylistUsecase{
		playlists: playlists,
		logger:    logger.With("component", "playlist_usecase"),
	}
}

// List returns a page of community playlists. When viewerID is set,
// each playlist carries whether that viewer has liked it.
func (uc *PlaylistUsecase) List(ctx context.Context, viewerID, sort string, page, limit int) ([]domain.Playlist, int, int, error) {
	if sort != domain.PlaylistSortNewest {
		sort = domain.PlaylistSortLikes
	}
	page = domain.ClampPage(page)
	limit = domain.ClampLimit(limit, domain.PlaylistDefaultLimit, domain.PlaylistMaxLimit)
	offset := (page - 1) * limit

	playlists, err := uc.playlists.List(ctx, sort, limit, offset)
	if err != nil {
		return nil, 0, 0, err
	}

	if viewerID != "" && len(playlists) > 0 {
		ids := make([]string, len(playlists))
		for i, p := range playlists {
			ids[i] = p.ID
		}
		liked, err := uc.playlists.LikedPlaylistIDs(ctx, viewerID, ids)
		if err != nil {
			return nil, 0, 0, err
		}
		for i := range playlists {
			playlists[i].LikedByMe = liked[playlists[i].ID]
		}
	}

	return playlists, page, limit, nil
}

// Create stores a new playlist with its entries. Positions follow the
// order the entries were submitted in.
func (uc *PlaylistUsecase) Create(ctx context.Context, userID, name, description string, tracks []domain.PlaylistTrack, videos []domain.PlaylistVideo) (*domain.Playlist, error) {
	if name == "" || len(name) > playlistNameMaxLength {
		return nil, domain.NewValidationError("name", "Name is required (1-100 characters)")
	}

	for i := range tracks {
		tracks[i].Position = i
	}
	for i := range videos {
		videos[i].Position = i
	}

	playlist := &domain.Playlist{
		ID:          domain.NewID(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		Tracks:      tracks,
		Videos:      videos,
	}

	if err := uc.playlists.Create(ctx, userID, playlist); err != nil {
		return nil, err
	}

	return playlist, nil
}

// Get loads a playlist with its tracks and videos. When viewerID is
// set, LikedByMe reflects that viewer.
func (uc *PlaylistUsecase) Get(ctx context.Context, playlistID, viewerID string) (*domain.Playlist, error) {
	playlist, err := uc.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	tracks, videos, err := uc.playlists.GetTracksAndVideos(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	playlist.Tracks = tracks
	playlist.Videos = videos

	if viewerID != "" {
		liked, err := uc.playlists.IsLikedBy(ctx, playlistID, viewerID)
		if err != nil {
			return nil, err
		}
		playlist.LikedByMe = liked
	}

	return playlist, nil
}

// ToggleLike likes an unliked playlist and unlikes a liked one,
// returning the new state.
func (uc *PlaylistUsecase) ToggleLike(ctx context.Context, playlistID, userID string) (bool, error) {
	if _, err := uc.playlists.GetByID(ctx, playlistID); err != nil {
		return false, err
	}

	liked, err := uc.playlists.IsLikedBy(ctx, playlistID, userID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := uc.playlists.Unlike(ctx, playlistID, userID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := uc.playlists.Like(ctx, playlistID, userID); err != nil {
		// A concurrent like of the same playlist; report the state
		// the user wanted.
		if errors.Is(err, domain.ErrDuplicate) {
			return true, nil
		}
		return false, err
	}

	return true, nil
}

// Delete removes a playlist the user owns. A playlist that does not
// exist or belongs to someone else returns domain.ErrNotFound.
func (uc *PlaylistUsecase) Delete(ctx context.Context, playlistID, userID string) error {
	deleted, err := uc.playlists.DeleteOwned(ctx, playlistID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}

	uc.logger.Info("playlist deleted", "playlist_id", playlistID, "user_id", userID)
	return nil
}

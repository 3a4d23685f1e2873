package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// FavoriteUsecase implements the favorites business logic
type FavoriteUsecase struct {
	favorites port.FavoriteRepository
	logger    *slog.Logger
}

// NewFavoriteUsecase creates a new FavoriteUsecase instance
func NewFavoriteUsecase(favorites port.FavoriteRepository, logger *slog.Logger) port.FavoriteUsecase {
	return &FavoriteUsecase{
		favorites: favorites,
		logger:    logger.With("component", "favorite_usecase"),
	}
}

// List returns the user's favorites ordered by position
func (uc *FavoriteUsecase) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	return uc.favorites.ListByUser(ctx, userID)
}

// Add appends a track to the user's favorites at the next free
// position. Adding a track twice returns domain.ErrDuplicate.
func (uc *FavoriteUsecase) Add(ctx context.Context, userID, trackSrc, trackTitle, trackCategory string) (*domain.Favorite, error) {
	if trackSrc == "" || trackTitle == "" {
		return nil, domain.NewValidationError("", "track_src and track_title are required")
	}

	exists, err := uc.favorites.Exists(ctx, userID, trackSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to check favorite: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicate
	}

	maxPos, err := uc.favorites.MaxPosition(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get max position: %w", err)
	}

	fav := &domain.Favorite{
		TrackSrc:      trackSrc,
		TrackTitle:    trackTitle,
		TrackCategory: trackCategory,
		Position:      maxPos + 1,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := uc.favorites.Insert(ctx, userID, fav)
	if err != nil {
		return nil, err
	}
	fav.ID = id

	return fav, nil
}

// Remove deletes a favorite by track source. A missing favorite
// returns domain.ErrNotFound.
func (uc *FavoriteUsecase) Remove(ctx context.Context, userID, trackSrc string) error {
	if trackSrc == "" {
		return domain.NewValidationError("track_src", "track_src is required")
	}

	deleted, err := uc.favorites.Delete(ctx, userID, trackSrc)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Reorder applies the given position assignments
func (uc *FavoriteUsecase) Reorder(ctx context.Context, userID string, order []domain.FavoritePosition) error {
	if order == nil {
		return domain.NewValidationError("order", "order must be an array of { id, position }")
	}

	return uc.favorites.UpdatePositions(ctx, userID, order)
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// HistoryUsecase implements the listening-history business logic
type HistoryUsecase struct {
	history port.HistoryRepository
	logger  *slog.Logger
}

// NewHistoryUsecase creates a new HistoryUsecase instance
func NewHistoryUsecase(history port.HistoryRepository, logger *slog.Logger) port.HistoryUsecase {
	return &HistoryUsecase{
		history: history,
		logger:  logger.With("component", "history_usecase"),
	}
}

// Record stores a listen event
func (uc *HistoryUsecase) Record(ctx context.Context, userID, trackSrc, trackTitle, trackCategory string) error {
	if trackSrc == "" || trackTitle == "" {
		return domain.NewValidationError("", "track_src and track_title are required")
	}

	event := &domain.ListenEvent{
		TrackSrc:      trackSrc,
		TrackTitle:    trackTitle,
		TrackCategory: trackCategory,
		ListenedAt:    time.Now().UTC(),
	}

	return uc.history.Insert(ctx, userID, event)
}

// Recent returns a page of the user's history, newest first, together
// with the normalized page and limit values.
func (uc *HistoryUsecase) Recent(ctx context.Context, userID string, page, limit int) ([]domain.ListenEvent, int, int, error) {
	page = domain.ClampPage(page)
	limit = domain.ClampLimit(limit, domain.HistoryDefaultLimit, domain.HistoryMaxLimit)
	offset := (page - 1) * limit

	events, err := uc.history.ListRecent(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, 0, err
	}

	return events, page, limit, nil
}

// Clear deletes the user's entire history
func (uc *HistoryUsecase) Clear(ctx context.Context, userID string) error {
	return uc.history.DeleteByUser(ctx, userID)
}

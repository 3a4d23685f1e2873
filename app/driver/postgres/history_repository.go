package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// HistoryRepository implements port.HistoryRepository for PostgreSQL
type HistoryRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewHistoryRepository creates a new PostgreSQL listening-history repository
func NewHistoryRepository(db DatabaseIface, logger *slog.Logger) port.HistoryRepository {
	return &HistoryRepository{
		db:     db,
		logger: logger.With("component", "history_repository"),
	}
}

// Insert records a listen event
func (r *HistoryRepository) Insert(ctx context.Context, userID string, event *domain.ListenEvent) error {
	query := `
		INSERT INTO listen_history (user_id, track_src, track_title, track_category)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		userID,
		event.TrackSrc,
		event.TrackTitle,
		nullable(event.TrackCategory),
	)

	if err != nil {
		r.logger.Error("failed to record listen", "user_id", userID, "error", err)
		return fmt.Errorf("failed to record listen: %w", err)
	}

	return nil
}

// ListRecent returns a page of the user's history, newest first
func (r *HistoryRepository) ListRecent(ctx context.Context, userID string, limit, offset int) ([]domain.ListenEvent, error) {
	query := `
		SELECT id, track_src, track_title, COALESCE(track_category, ''), listened_at
		FROM listen_history
		WHERE user_id = $1
		ORDER BY listened_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.logger.Error("failed to list history", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	events := []domain.ListenEvent{}
	for rows.Next() {
		var event domain.ListenEvent
		if err := rows.Scan(&event.ID, &event.TrackSrc, &event.TrackTitle, &event.TrackCategory, &event.ListenedAt); err != nil {
			return nil, fmt.Errorf("failed to scan listen event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return events, nil
}

// DeleteByUser clears the user's entire history
func (r *HistoryRepository) DeleteByUser(ctx context.Context, userID string) error {
	query := `DELETE FROM listen_history WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to clear history", "user_id", userID, "error", err)
		return fmt.Errorf("failed to clear history: %w", err)
	}

	r.logger.Info("history cleared", "user_id", userID, "rows_deleted", tag.RowsAffected())
	return nil
}

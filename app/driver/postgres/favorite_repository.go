package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// FavoriteRepository implements port.FavoriteRepository for PostgreSQL
type FavoriteRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewFavoriteRepository creates a new PostgreSQL favorites repository
func NewFavoriteRepository(db DatabaseIface, logger *slog.Logger) port.FavoriteRepository {
	return &FavoriteRepository{
		db:     db,
		logger: logger.With("component", "favorite_repository"),
	}
}

// ListByUser returns the user's favorites ordered by position
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	query := `
		SELECT id, track_src, track_title, COALESCE(track_category, ''), position, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY position ASC, created_at ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to list favorites", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []domain.Favorite{}
	for rows.Next() {
		var fav domain.Favorite
		if err := rows.Scan(&fav.ID, &fav.TrackSrc, &fav.TrackTitle, &fav.TrackCategory, &fav.Position, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	return favorites, nil
}

// Exists reports whether the track is already a favorite of the user
func (r *FavoriteRepository) Exists(ctx context.Context, userID, trackSrc string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND track_src = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, trackSrc).Scan(&exists); err != nil {
		r.logger.Error("failed to check favorite", "user_id", userID, "error", err)
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return exists, nil
}

// MaxPosition returns the highest position among the user's favorites,
// or -1 when the user has none.
func (r *FavoriteRepository) MaxPosition(ctx context.Context, userID string) (int, error) {
	query := `SELECT COALESCE(MAX(position), -1) FROM favorites WHERE user_id = $1`

	var max int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&max); err != nil {
		r.logger.Error("failed to get max position", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to get max position: %w", err)
	}

	return max, nil
}

// Insert adds a favorite and returns its generated id
func (r *FavoriteRepository) Insert(ctx context.Context, userID string, fav *domain.Favorite) (int64, error) {
	query := `
		INSERT INTO favorites (user_id, track_src, track_title, track_category, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		userID,
		fav.TrackSrc,
		fav.TrackTitle,
		nullable(fav.TrackCategory),
		fav.Position,
	).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		r.logger.Error("failed to insert favorite", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to insert favorite: %w", err)
	}

	r.logger.Info("favorite added", "user_id", userID, "track_src", fav.TrackSrc)
	return id, nil
}

// Delete removes a favorite by track source and returns the number of
// deleted rows
func (r *FavoriteRepository) Delete(ctx context.Context, userID, trackSrc string) (int64, error) {
	query := `DELETE FROM favorites WHERE user_id = $1 AND track_src = $2`

	tag, err := r.db.Exec(ctx, query, userID, trackSrc)
	if err != nil {
		r.logger.Error("failed to delete favorite", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to delete favorite: %w", err)
	}

	return tag.RowsAffected(), nil
}

// UpdatePositions applies a reorder as one transaction of position
// updates. The user id guard keeps a request from moving someone
// else's rows.
func (r *FavoriteRepository) UpdatePositions(ctx context.Context, userID string, order []domain.FavoritePosition) error {
	if len(order) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE favorites SET position = $3 WHERE user_id = $1 AND id = $2`

	for _, entry := range order {
		if _, err := tx.Exec(ctx, query, userID, entry.ID, entry.Position); err != nil {
			r.logger.Error("failed to reorder favorites", "user_id", userID, "error", err)
			return fmt.Errorf("failed to reorder favorites: %w", err)
		}
	}

	return tx.Commit(ctx)
}

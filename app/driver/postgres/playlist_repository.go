package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// PlaylistRepository implements port.PlaylistRepository for PostgreSQL
type PlaylistRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewPlaylistRepository creates a new PostgreSQL community playlist repository
func NewPlaylistRepository(db DatabaseIface, logger *slog.Logger) port.PlaylistRepository {
	return &PlaylistRepository{
		db:     db,
		logger: logger.With("component", "playlist_repository"),
	}
}

// List returns a page of community playlists with creator info and
// entry counts. sort is one of domain.PlaylistSortLikes or
// domain.PlaylistSortNewest.
func (r *PlaylistRepository) List(ctx context.Context, sort string, limit, offset int) ([]domain.Playlist, error) {
	orderBy := `p.created_at DESC`
	if sort == domain.PlaylistSortLikes {
		orderBy = `p.total_likes DESC, p.created_at DESC`
	}

	query := `
		SELECT
			p.id, p.name, COALESCE(p.description, ''), p.total_likes, p.created_at,
			u.username, COALESCE(u.avatar_url, ''),
			(SELECT COUNT(*) FROM community_playlist_tracks t WHERE t.playlist_id = p.id),
			(SELECT COUNT(*) FROM community_playlist_videos v WHERE v.playlist_id = p.id)
		FROM community_playlists p
		JOIN users u ON u.id = p.user_id
		ORDER BY ` + orderBy + `
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("failed to list playlists", "error", err)
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer rows.Close()

	playlists := []domain.Playlist{}
	for rows.Next() {
		var p domain.Playlist
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.TotalLikes, &p.CreatedAt,
			&p.CreatorName, &p.CreatorAvatar,
			&p.TrackCount, &p.VideoCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playlists: %w", err)
	}

	return playlists, nil
}

// LikedPlaylistIDs reports which of the given playlists the user has
// liked
func (r *PlaylistRepository) LikedPlaylistIDs(ctx context.Context, userID string, playlistIDs []string) (map[string]bool, error) {
	liked := map[string]bool{}
	if len(playlistIDs) == 0 {
		return liked, nil
	}

	query := `SELECT playlist_id FROM playlist_likes WHERE user_id = $1 AND playlist_id = ANY($2)`

	rows, err := r.db.Query(ctx, query, userID, playlistIDs)
	if err != nil {
		r.logger.Error("failed to load likes", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load likes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		liked[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read likes: %w", err)
	}

	return liked, nil
}

// Create inserts a playlist with its tracks and videos in one
// transaction
func (r *PlaylistRepository) Create(ctx context.Context, userID string, playlist *domain.Playlist) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO community_playlists (id, user_id, name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		playlist.ID, userID, playlist.Name, nullable(playlist.Description), playlist.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert playlist", "user_id", userID, "error", err)
		return fmt.Errorf("failed to insert playlist: %w", err)
	}

	for _, track := range playlist.Tracks {
		_, err = tx.Exec(ctx, `
			INSERT INTO community_playlist_tracks (playlist_id, track_src, track_title, track_category, position)
			VALUES ($1, $2, $3, $4, $5)`,
			playlist.ID, track.Src, track.Title, nullable(track.Category), track.Position,
		)
		if err != nil {
			return fmt.Errorf("failed to insert playlist track: %w", err)
		}
	}

	for _, video := range playlist.Videos {
		_, err = tx.Exec(ctx, `
			INSERT INTO community_playlist_videos (playlist_id, video_src, video_title, position)
			VALUES ($1, $2, $3, $4)`,
			playlist.ID, video.Src, video.Title, video.Position,
		)
		if err != nil {
			return fmt.Errorf("failed to insert playlist video: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit playlist: %w", err)
	}

	r.logger.Info("playlist created", "playlist_id", playlist.ID, "user_id", userID,
		"tracks", len(playlist.Tracks), "videos", len(playlist.Videos))
	return nil
}

// GetByID returns a playlist with creator info, without its entries
func (r *PlaylistRepository) GetByID(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	query := `
		SELECT
			p.id, p.name, COALESCE(p.description, ''), p.total_likes, p.created_at,
			u.username, COALESCE(u.avatar_url, '')
		FROM community_playlists p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`

	p := &domain.Playlist{}
	err := r.db.QueryRow(ctx, query, playlistID).Scan(
		&p.ID, &p.Name, &p.Description, &p.TotalLikes, &p.CreatedAt,
		&p.CreatorName, &p.CreatorAvatar,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("failed to get playlist", "playlist_id", playlistID, "error", err)
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}

	return p, nil
}

// GetTracksAndVideos returns a playlist's entries ordered by position
func (r *PlaylistRepository) GetTracksAndVideos(ctx context.Context, playlistID string) ([]domain.PlaylistTrack, []domain.PlaylistVideo, error) {
	trackRows, err := r.db.Query(ctx, `
		SELECT track_src, track_title, COALESCE(track_category, ''), position
		FROM community_playlist_tracks
		WHERE playlist_id = $1
		ORDER BY position ASC`, playlistID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list playlist tracks: %w", err)
	}
	defer trackRows.Close()

	tracks := []domain.PlaylistTrack{}
	for trackRows.Next() {
		var track domain.PlaylistTrack
		if err := trackRows.Scan(&track.Src, &track.Title, &track.Category, &track.Position); err != nil {
			return nil, nil, fmt.Errorf("failed to scan playlist track: %w", err)
		}
		tracks = append(tracks, track)
	}
	if err := trackRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read playlist tracks: %w", err)
	}

	videoRows, err := r.db.Query(ctx, `
		SELECT video_src, video_title, position
		FROM community_playlist_videos
		WHERE playlist_id = $1
		ORDER BY position ASC`, playlistID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list playlist videos: %w", err)
	}
	defer videoRows.Close()

	videos := []domain.PlaylistVideo{}
	for videoRows.Next() {
		var video domain.PlaylistVideo
		if err := videoRows.Scan(&video.Src, &video.Title, &video.Position); err != nil {
			return nil, nil, fmt.Errorf("failed to scan playlist video: %w", err)
		}
		videos = append(videos, video)
	}
	if err := videoRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read playlist videos: %w", err)
	}

	return tracks, videos, nil
}

// IsLikedBy reports whether the user has liked the playlist
func (r *PlaylistRepository) IsLikedBy(ctx context.Context, playlistID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM playlist_likes WHERE playlist_id = $1 AND user_id = $2)`

	var liked bool
	if err := r.db.QueryRow(ctx, query, playlistID, userID).Scan(&liked); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return liked, nil
}

// Like records a like and bumps the counter in one transaction
func (r *PlaylistRepository) Like(ctx context.Context, playlistID, userID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO playlist_likes (playlist_id, user_id)
		VALUES ($1, $2)`, playlistID, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE community_playlists SET total_likes = total_likes + 1 WHERE id = $1`, playlistID)
	if err != nil {
		return fmt.Errorf("failed to bump like counter: %w", err)
	}

	return tx.Commit(ctx)
}

// Unlike removes a like and lowers the counter in one transaction
func (r *PlaylistRepository) Unlike(ctx context.Context, playlistID, userID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		DELETE FROM playlist_likes WHERE playlist_id = $1 AND user_id = $2`, playlistID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	if tag.RowsAffected() > 0 {
		_, err = tx.Exec(ctx, `
			UPDATE community_playlists SET total_likes = GREATEST(total_likes - 1, 0) WHERE id = $1`, playlistID)
		if err != nil {
			return fmt.Errorf("failed to lower like counter: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// DeleteOwned removes a playlist owned by the user. Likes, tracks and
// videos go with it through the ON DELETE CASCADE constraints. Returns
// false when the playlist does not exist or belongs to someone else.
func (r *PlaylistRepository) DeleteOwned(ctx context.Context, playlistID, userID string) (bool, error) {
	query := `DELETE FROM community_playlists WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, playlistID, userID)
	if err != nil {
		r.logger.Error("failed to delete playlist", "playlist_id", playlistID, "error", err)
		return false, fmt.Errorf("failed to delete playlist: %w", err)
	}

	deleted := tag.RowsAffected() > 0
	if deleted {
		r.logger.Info("playlist deleted", "playlist_id", playlistID, "user_id", userID)
	}
	return deleted, nil
}

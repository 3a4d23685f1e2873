package port

//go:generate mockgen -source=content_port.go -destination=../mocks/mock_content_port.go -package=mocks

import (
	"context"

	"audiooasis-api/app/domain"
)

// FavoriteUsecase defines favorites business logic
type FavoriteUsecase interface {
	List(ctx context.Context, userID string) ([]domain.Favorite, error)
	Add(ctx context.Context, userID, trackSrc, trackTitle, trackCategory string) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, trackSrc string) error
	Reorder(ctx context.Context, userID string, order []domain.FavoritePosition) error
}

// FavoriteRepository defines favorites data access
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error)
	Exists(ctx context.Context, userID, trackSrc string) (bool, error)
	MaxPosition(ctx context.Context, userID string) (int, error)
	Insert(ctx context.Context, userID string, fav *domain.Favorite) (int64, error)
	Delete(ctx context.Context, userID, trackSrc string) (int64, error)
	UpdatePositions(ctx context.Context, userID string, order []domain.FavoritePosition) error
}

// HistoryUsecase defines listening-history business logic
type HistoryUsecase interface {
	Record(ctx context.Context, userID, trackSrc, trackTitle, trackCategory string) error
	Recent(ctx context.Context, userID string, page, limit int) ([]domain.ListenEvent, int, int, error)
	Clear(ctx context.Context, userID string) error
}

// HistoryRepository defines listening-history data access
type HistoryRepository interface {
	Insert(ctx context.Context, userID string, event *domain.ListenEvent) error
	ListRecent(ctx context.Context, userID string, limit, offset int) ([]domain.ListenEvent, error)
	DeleteByUser(ctx context.Context, userID string) error
}

// PlaylistUsecase defines community playlist business logic. viewerID
// is empty for anonymous requests.
type PlaylistUsecase interface {
	List(ctx context.Context, viewerID, sort string, page, limit int) ([]domain.Playlist, int, int, error)
	Create(ctx context.Context, userID, name, description string, tracks []domain.PlaylistTrack, videos []domain.PlaylistVideo) (*domain.Playlist, error)
	Get(ctx context.Context, playlistID, viewerID string) (*domain.Playlist, error)
	ToggleLike(ctx context.Context, playlistID, userID string) (bool, error)
	Delete(ctx context.Context, playlistID, userID string) error
}

// PlaylistRepository defines community playlist data access
type PlaylistRepository interface {
	List(ctx context.Context, sort string, limit, offset int) ([]domain.Playlist, error)
	LikedPlaylistIDs(ctx context.Context, userID string, playlistIDs []string) (map[string]bool, error)
	Create(ctx context.Context, userID string, playlist *domain.Playlist) error
	GetByID(ctx context.Context, playlistID string) (*domain.Playlist, error)
	GetTracksAndVideos(ctx context.Context, playlistID string) ([]domain.PlaylistTrack, []domain.PlaylistVideo, error)
	IsLikedBy(ctx context.Context, playlistID, userID string) (bool, error)
	Like(ctx context.Context, playlistID, userID string) error
	Unlike(ctx context.Context, playlistID, userID string) error
	DeleteOwned(ctx context.Context, playlistID, userID string) (bool, error)
}

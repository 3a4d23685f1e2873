package domain

import "time"

// Favorite is a track pinned by a user, ordered by Position.
type Favorite struct {
	ID            int64     `json:"id"`
	TrackSrc      string    `json:"track_src"`
	TrackTitle    string    `json:"track_title"`
	TrackCategory string    `json:"track_category"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"created_at"`
}

// FavoritePosition is one entry of a reorder request.
type FavoritePosition struct {
	ID       int64 `json:"id"`
	Position int   `json:"position"`
}

// ListenEvent is a single listening-history entry.
type ListenEvent struct {
	ID            int64     `json:"id"`
	TrackSrc      string    `json:"track_src"`
	TrackTitle    string    `json:"track_title"`
	TrackCategory string    `json:"track_category"`
	ListenedAt    time.Time `json:"listened_at"`
}

// PlaylistTrack is an audio entry of a community playlist.
type PlaylistTrack struct {
	Src      string `json:"src"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Position int    `json:"position"`
}

// PlaylistVideo is a video entry of a community playlist.
type PlaylistVideo struct {
	Src      string `json:"src"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// Playlist is a community playlist. Tracks and Videos are populated on
// detail reads only; TrackCount/VideoCount on list reads.
type Playlist struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	TotalLikes    int             `json:"total_likes"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatorName   string          `json:"creator_name"`
	CreatorAvatar string          `json:"creator_avatar,omitempty"`
	TrackCount    int             `json:"track_count"`
	VideoCount    int             `json:"video_count"`
	Tracks        []PlaylistTrack `json:"tracks,omitempty"`
	Videos        []PlaylistVideo `json:"videos,omitempty"`
	LikedByMe     bool            `json:"liked_by_me"`
}

// Playlist list sort orders.
const (
	PlaylistSortLikes  = "likes"
	PlaylistSortNewest = "newest"
)

// Pagination bounds per endpoint, matching the public API contract.
const (
	HistoryDefaultLimit  = 50
	HistoryMaxLimit      = 100
	PlaylistDefaultLimit = 20
	PlaylistMaxLimit     = 50
)

// ClampPage normalizes a 1-based page number.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampLimit bounds a page size to [1, max], substituting the default
// for non-positive input.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		limit = def
	}
	if limit < 1 {
		limit = 1
	}
	if limit > max {
		limit = max
	}
	return limit
}

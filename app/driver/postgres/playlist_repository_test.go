package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/utils/logger"
)

func createTestPlaylistRepository(t *testing.T) (*PlaylistRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	repo := NewPlaylistRepository(mockDB, testLogger).(*PlaylistRepository)

	return repo, mockDB
}

func playlistListColumns() []string {
	return []string{
		"id", "name", "description", "total_likes", "created_at",
		"username", "avatar_url", "track_count", "video_count",
	}
}

func TestPlaylistRepository_List(t *testing.T) {
	now := time.Now().UTC()

	repo, mockDB := createTestPlaylistRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM community_playlists").
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(playlistListColumns()).
			AddRow("pl-1", "Focus", "deep work", 10, now, "alice", "", 5, 0).
			AddRow("pl-2", "Chill", "", 3, now, "bob", "https://cdn.example.com/b.png", 2, 1))

	playlists, err := repo.List(context.Background(), domain.PlaylistSortLikes, 20, 0)
	require.NoError(t, err)

	require.Len(t, playlists, 2)
	assert.Equal(t, "Focus", playlists[0].Name)
	assert.Equal(t, "alice", playlists[0].CreatorName)
	assert.Equal(t, 5, playlists[0].TrackCount)
	assert.Equal(t, 1, playlists[1].VideoCount)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPlaylistRepository_LikedPlaylistIDs(t *testing.T) {
	t.Run("returns liked subset", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("FROM playlist_likes").
			WithArgs("user-1", []string{"pl-1", "pl-2"}).
			WillReturnRows(pgxmock.NewRows([]string{"playlist_id"}).AddRow("pl-2"))

		liked, err := repo.LikedPlaylistIDs(context.Background(), "user-1", []string{"pl-1", "pl-2"})
		require.NoError(t, err)

		assert.False(t, liked["pl-1"])
		assert.True(t, liked["pl-2"])
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("no ids short-circuits", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		liked, err := repo.LikedPlaylistIDs(context.Background(), "user-1", nil)
		require.NoError(t, err)

		assert.Empty(t, liked)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestPlaylistRepository_Create(t *testing.T) {
	playlist := &domain.Playlist{
		ID:          "pl-1",
		Name:        "Focus",
		Description: "deep work",
		CreatedAt:   time.Now().UTC(),
		Tracks: []domain.PlaylistTrack{
			{Src: "tracks/rain.mp3", Title: "Rain", Category: "ambient", Position: 0},
		},
		Videos: []domain.PlaylistVideo{
			{Src: "videos/fire.mp4", Title: "Fireplace", Position: 0},
		},
	}

	t.Run("playlist with entries committed", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("INSERT INTO community_playlists").
			WithArgs("pl-1", "user-1", "Focus", "deep work", playlist.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockDB.ExpectExec("INSERT INTO community_playlist_tracks").
			WithArgs("pl-1", "tracks/rain.mp3", "Rain", "ambient", 0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockDB.ExpectExec("INSERT INTO community_playlist_videos").
			WithArgs("pl-1", "videos/fire.mp4", "Fireplace", 0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockDB.ExpectCommit()

		err := repo.Create(context.Background(), "user-1", playlist)
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("track insert failure rolls back", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("INSERT INTO community_playlists").
			WithArgs("pl-1", "user-1", "Focus", "deep work", playlist.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockDB.ExpectExec("INSERT INTO community_playlist_tracks").
			WithArgs("pl-1", "tracks/rain.mp3", "Rain", "ambient", 0).
			WillReturnError(pgx.ErrTxClosed)
		mockDB.ExpectRollback()

		err := repo.Create(context.Background(), "user-1", playlist)
		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestPlaylistRepository_GetByID(t *testing.T) {
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("FROM community_playlists").
			WithArgs("pl-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "total_likes", "created_at", "username", "avatar_url"}).
				AddRow("pl-1", "Focus", "deep work", 10, now, "alice", ""))

		playlist, err := repo.GetByID(context.Background(), "pl-1")
		require.NoError(t, err)

		assert.Equal(t, "Focus", playlist.Name)
		assert.Equal(t, 10, playlist.TotalLikes)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("FROM community_playlists").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		playlist, err := repo.GetByID(context.Background(), "missing")

		assert.Nil(t, playlist)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestPlaylistRepository_GetTracksAndVideos(t *testing.T) {
	repo, mockDB := createTestPlaylistRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM community_playlist_tracks").
		WithArgs("pl-1").
		WillReturnRows(pgxmock.NewRows([]string{"track_src", "track_title", "track_category", "position"}).
			AddRow("tracks/rain.mp3", "Rain", "ambient", 0))
	mockDB.ExpectQuery("FROM community_playlist_videos").
		WithArgs("pl-1").
		WillReturnRows(pgxmock.NewRows([]string{"video_src", "video_title", "position"}))

	tracks, videos, err := repo.GetTracksAndVideos(context.Background(), "pl-1")
	require.NoError(t, err)

	require.Len(t, tracks, 1)
	assert.Equal(t, "Rain", tracks[0].Title)
	assert.Empty(t, videos)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPlaylistRepository_Like(t *testing.T) {
	t.Run("like recorded with counter bump", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("INSERT INTO playlist_likes").
			WithArgs("pl-1", "user-1").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockDB.ExpectExec("UPDATE community_playlists").
			WithArgs("pl-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mockDB.ExpectCommit()

		err := repo.Like(context.Background(), "pl-1", "user-1")
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("double like maps to duplicate", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("INSERT INTO playlist_likes").
			WithArgs("pl-1", "user-1").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
		mockDB.ExpectRollback()

		err := repo.Like(context.Background(), "pl-1", "user-1")
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestPlaylistRepository_Unlike(t *testing.T) {
	t.Run("unlike lowers the counter", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("DELETE FROM playlist_likes").
			WithArgs("pl-1", "user-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mockDB.ExpectExec("UPDATE community_playlists").
			WithArgs("pl-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mockDB.ExpectCommit()

		err := repo.Unlike(context.Background(), "pl-1", "user-1")
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("no like leaves counter untouched", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("DELETE FROM playlist_likes").
			WithArgs("pl-1", "user-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mockDB.ExpectCommit()

		err := repo.Unlike(context.Background(), "pl-1", "user-1")
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestPlaylistRepository_DeleteOwned(t *testing.T) {
	t.Run("owner delete", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM community_playlists").
			WithArgs("pl-1", "user-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.DeleteOwned(context.Background(), "pl-1", "user-1")
		require.NoError(t, err)

		assert.True(t, deleted)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("not the owner", func(t *testing.T) {
		repo, mockDB := createTestPlaylistRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM community_playlists").
			WithArgs("pl-1", "someone-else").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.DeleteOwned(context.Background(), "pl-1", "someone-else")
		require.NoError(t, err)

		assert.False(t, deleted)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

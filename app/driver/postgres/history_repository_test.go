package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/utils/logger"
)

func createTestHistoryRepository(t *testing.T) (*HistoryRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	repo := NewHistoryRepository(mockDB, testLogger).(*HistoryRepository)

	return repo, mockDB
}

func TestHistoryRepository_Insert(t *testing.T) {
	repo, mockDB := createTestHistoryRepository(t)
	defer mockDB.Close()

	mockDB.ExpectExec("INSERT INTO listen_history").
		WithArgs("user-1", "tracks/rain.mp3", "Rain", nil).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	event := &domain.ListenEvent{TrackSrc: "tracks/rain.mp3", TrackTitle: "Rain"}
	err := repo.Insert(context.Background(), "user-1", event)

	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestHistoryRepository_ListRecent(t *testing.T) {
	now := time.Now().UTC()

	repo, mockDB := createTestHistoryRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM listen_history").
		WithArgs("user-1", 50, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "track_src", "track_title", "track_category", "listened_at"}).
			AddRow(int64(2), "tracks/waves.mp3", "Waves", "nature", now).
			AddRow(int64(1), "tracks/rain.mp3", "Rain", "", now.Add(-time.Hour)))

	events, err := repo.ListRecent(context.Background(), "user-1", 50, 0)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "Waves", events[0].TrackTitle)
	assert.Equal(t, "Rain", events[1].TrackTitle)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestHistoryRepository_DeleteByUser(t *testing.T) {
	repo, mockDB := createTestHistoryRepository(t)
	defer mockDB.Close()

	mockDB.ExpectExec("DELETE FROM listen_history").
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 12))

	err := repo.DeleteByUser(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

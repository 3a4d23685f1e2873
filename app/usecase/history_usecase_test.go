package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/mocks"
	"audiooasis-api/app/utils/logger"
)

func createTestHistoryUsecase(t *testing.T) (*HistoryUsecase, *mocks.MockHistoryRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHistoryRepository(ctrl)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	uc := NewHistoryUsecase(repo, testLogger).(*HistoryUsecase)

	return uc, repo
}

func TestHistoryUsecase_Record(t *testing.T) {
	t.Run("recorded", func(t *testing.T) {
		uc, repo := createTestHistoryUsecase(t)

		repo.EXPECT().
			Insert(gomock.Any(), "user-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, event *domain.ListenEvent) error {
				assert.Equal(t, "tracks/rain.mp3", event.TrackSrc)
				assert.Equal(t, "Rain", event.TrackTitle)
				assert.False(t, event.ListenedAt.IsZero())
				return nil
			})

		err := uc.Record(context.Background(), "user-1", "tracks/rain.mp3", "Rain", "ambient")
		assert.NoError(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		uc, _ := createTestHistoryUsecase(t)

		err := uc.Record(context.Background(), "user-1", "", "Rain", "")

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "track_src and track_title are required", validationErr.Message)
	})
}

func TestHistoryUsecase_Recent(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 50, wantOffset: 0},
		{name: "second page", page: 2, limit: 25, wantPage: 2, wantLimit: 25, wantOffset: 25},
		{name: "limit clamped to max", page: 1, limit: 500, wantPage: 1, wantLimit: 100, wantOffset: 0},
		{name: "negative page normalized", page: -3, limit: 10, wantPage: 1, wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := createTestHistoryUsecase(t)

			events := []domain.ListenEvent{{ID: 1, TrackSrc: "tracks/rain.mp3"}}
			repo.EXPECT().
				ListRecent(gomock.Any(), "user-1", tt.wantLimit, tt.wantOffset).
				Return(events, nil)

			got, page, limit, err := uc.Recent(context.Background(), "user-1", tt.page, tt.limit)
			require.NoError(t, err)

			assert.Equal(t, events, got)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestHistoryUsecase_Clear(t *testing.T) {
	uc, repo := createTestHistoryUsecase(t)

	repo.EXPECT().DeleteByUser(gomock.Any(), "user-1").Return(nil)

	err := uc.Clear(context.Background(), "user-1")
	assert.NoError(t, err)
}

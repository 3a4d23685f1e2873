package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/mocks"
)

func TestHistoryHandler_Record(t *testing.T) {
	t.Run("recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mocks.NewMockHistoryUsecase(ctrl)
		handler := NewHistoryHandler(history, testHandlerLogger(t))

		history.EXPECT().
			Record(gomock.Any(), "user-1", "lofi/rain.mp3", "Rain", "lofi").
			Return(nil)

		c, rec := newJSONContext(t, http.MethodPost, "/history",
			`{"track_src":"lofi/rain.mp3","track_title":"Rain","track_category":"lofi"}`)
		c.Set("user_id", "user-1")

		require.NoError(t, handler.Record(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})

	t.Run("missing fields rejected before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mocks.NewMockHistoryUsecase(ctrl)
		handler := NewHistoryHandler(history, testHandlerLogger(t))

		c, rec := newJSONContext(t, http.MethodPost, "/history", `{}`)
		c.Set("user_id", "user-1")

		require.NoError(t, handler.Record(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "track_src and track_title are required", resp.Error)
	})
}

func TestHistoryHandler_Recent(t *testing.T) {
	t.Run("paged response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mocks.NewMockHistoryUsecase(ctrl)
		handler := NewHistoryHandler(history, testHandlerLogger(t))

		events := []domain.ListenEvent{
			{ID: 3, TrackSrc: "lofi/rain.mp3", ListenedAt: time.Now().UTC()},
		}
		history.EXPECT().
			Recent(gomock.Any(), "user-1", 2, 25).
			Return(events, 2, 25, nil)

		c, rec := newJSONContext(t, http.MethodGet, "/history?page=2&limit=25", "")
		c.Set("user_id", "user-1")

		require.NoError(t, handler.Recent(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HistoryPage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 25, resp.Limit)
		require.Len(t, resp.History, 1)
	})

	t.Run("garbage paging falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mocks.NewMockHistoryUsecase(ctrl)
		handler := NewHistoryHandler(history, testHandlerLogger(t))

		history.EXPECT().
			Recent(gomock.Any(), "user-1", 0, 0).
			Return(nil, 1, 50, nil)

		c, rec := newJSONContext(t, http.MethodGet, "/history?page=abc&limit=", "")
		c.Set("user_id", "user-1")

		require.NoError(t, handler.Recent(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"history":[],"page":1,"limit":50}`, rec.Body.String())
	})
}

func TestHistoryHandler_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mocks.NewMockHistoryUsecase(ctrl)
	handler := NewHistoryHandler(history, testHandlerLogger(t))

	history.EXPECT().Clear(gomock.Any(), "user-1").Return(nil)

	c, rec := newJSONContext(t, http.MethodDelete, "/history", "")
	c.Set("user_id", "user-1")

	require.NoError(t, handler.Clear(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

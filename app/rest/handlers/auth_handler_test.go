package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/mocks"
	"audiooasis-api/app/utils/logger"
	"audiooasis-api/app/utils/validator"
)

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e := echo.New()
	e.Validator = validator.New()
	return e.NewContext(req, rec), rec
}

func testHandlerLogger(t *testing.T) *slog.Logger {
	t.Helper()

	l, err := logger.New("error")
	require.NoError(t, err)
	return l
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		handler := NewAuthHandler(authUsecase, testHandlerLogger(t))

		user := &domain.User{ID: "user-1", Email: "new@example.com", Username: "newbie"}
		authUsecase.EXPECT().
			Signup(gomock.Any(), "new@example.com", "newbie", "hunter22").
			Return(user, "signed.token", nil)

		c, rec := newJSONContext(t, http.MethodPost, "/auth/signup",
			`{"email":"new@example.com","username":"newbie","password":"hunter22"}`)

		require.NoError(t, handler.Signup(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp SessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed.token", resp.Token)
		assert.Equal(t, "user-1", resp.User.ID)
		assert.Equal(t, "newbie", resp.User.Username)
	})

	t.Run("validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		handler := NewAuthHandler(authUsecase, testHandlerLogger(t))

		authUsecase.EXPECT().
			Signup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, "", domain.NewValidationError("password", "Password must be at least 6 characters"))

		c, rec := newJSONContext(t, http.MethodPost, "/auth/signup",
			`{"email":"new@example.com","username":"newbie","password":"abc"}`)

		require.NoError(t, handler.Signup(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Password must be at least 6 characters", resp.Error)
	})

	t.Run("taken identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		handler := NewAuthHandler(authUsecase, testHandlerLogger(t))

		authUsecase.EXPECT().
			Signup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, "", domain.ErrDuplicateUser)

		c, rec := newJSONContext(t, http.MethodPost, "/auth/signup",
			`{"email":"dup@example.com","username":"dupe","password":"hunter22"}`)

		require.NoError(t, handler.Signup(c))
		require.Equal(t, http.StatusConflict, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Email or username already taken", resp.Error)
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		handler := NewAuthHandler(authUsecase, testHandlerLogger(t))

		authUsecase.EXPECT().
			Signup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, "", assert.AnError)

		c, rec := newJSONContext(t, http.MethodPost, "/auth/signup",
			`{"email":"new@example.com","username":"newbie","password":"hunter22"}`)

		require.NoError(t, handler.Signup(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Internal server error", resp.Error)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		handler := NewAuthHandler(authUsecase, testHandlerLogger(t))

		user := &domain.User{
			ID:        "user-1",
			Email:     "listener@example.com",
			Username:  "listener",
			AvatarURL: "https://cdn.example.com/a.png",
		}
		authUsecase.EXPECT().
			Login(gomock.Any(), "listener@example.com", "hunter22").
			Return(user, "signed.token", nil)

		c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
			`{"email":"listener@example.com","password":"hunter22"}`)

		require.NoError(t, handler.Login(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp SessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed.token", resp.Token)
		assert.Equal(t, "https://cdn.example.com/a.png", resp.User.AvatarURL)
	})

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		handler := NewAuthHandler(authUsecase, testHandlerLogger(t))

		authUsecase.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, "", domain.ErrInvalidCredentials)

		c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
			`{"email":"listener@example.com","password":"wrong"}`)

		require.NoError(t, handler.Login(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid email or password", resp.Error)
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		handler := NewAuthHandler(authUsecase, testHandlerLogger(t))

		authUsecase.EXPECT().
			Login(gomock.Any(), "", "").
			Return(nil, "", domain.NewValidationError("credentials", "Email and password are required"))

		c, rec := newJSONContext(t, http.MethodPost, "/auth/login", `{}`)

		require.NoError(t, handler.Login(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Email and password are required", resp.Error)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		handler := NewAuthHandler(authUsecase, testHandlerLogger(t))

		user := &domain.User{ID: "user-1", Email: "listener@example.com", Username: "listener"}
		authUsecase.EXPECT().GetProfile(gomock.Any(), "user-1").Return(user, nil)

		c, rec := newJSONContext(t, http.MethodGet, "/me", "")
		c.Set("user_id", "user-1")

		require.NoError(t, handler.Me(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]UserPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "listener", resp["user"].Username)
	})

	t.Run("stale token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		handler := NewAuthHandler(authUsecase, testHandlerLogger(t))

		authUsecase.EXPECT().GetProfile(gomock.Any(), "gone").Return(nil, domain.ErrUserNotFound)

		c, rec := newJSONContext(t, http.MethodGet, "/me", "")
		c.Set("user_id", "gone")

		require.NoError(t, handler.Me(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Unauthorized", resp.Error)
	})
}

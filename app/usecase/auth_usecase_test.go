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

type authMocks struct {
	users  *mocks.MockUserRepository
	hasher *mocks.MockPasswordHasher
	tokens *mocks.MockTokenService
}

func createTestAuthUsecase(t *testing.T) (*AuthUsecase, authMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := authMocks{
		users:  mocks.NewMockUserRepository(ctrl),
		hasher: mocks.NewMockPasswordHasher(ctrl),
		tokens: mocks.NewMockTokenService(ctrl),
	}

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	uc := NewAuthUsecase(m.users, m.hasher, m.tokens, testLogger).(*AuthUsecase)

	return uc, m
}

func TestAuthUsecase_Signup(t *testing.T) {
	t.Run("successful signup", func(t *testing.T) {
		uc, m := createTestAuthUsecase(t)

		m.users.EXPECT().
			EmailOrUsernameExists(gomock.Any(), "New@Example.com", "listener").
			Return(false, nil)
		m.hasher.EXPECT().
			Hash("secret123").
			Return("salt:hash", nil)
		m.users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) error {
				assert.Equal(t, "new@example.com", user.Email)
				assert.Equal(t, "listener", user.Username)
				assert.Equal(t, "salt:hash", user.PasswordHash)
				assert.Equal(t, domain.AuthProviderEmail, user.AuthProvider)
				assert.NotEmpty(t, user.ID)
				return nil
			})
		m.tokens.EXPECT().
			Issue(gomock.Any()).
			Return("jwt-token", nil)

		user, token, err := uc.Signup(context.Background(), "New@Example.com", "listener", "secret123")
		require.NoError(t, err)

		assert.Equal(t, "jwt-token", token)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name     string
			email    string
			username string
			password string
			wantMsg  string
		}{
			{
				name:     "missing fields",
				email:    "",
				username: "listener",
				password: "secret123",
				wantMsg:  "Email, username, and password are required",
			},
			{
				name:     "short password",
				email:    "new@example.com",
				username: "listener",
				password: "12345",
				wantMsg:  "Password must be at least 6 characters",
			},
			{
				name:     "short username",
				email:    "new@example.com",
				username: "ab",
				password: "secret123",
				wantMsg:  "Username must be 3-30 characters",
			},
			{
				name:     "long username",
				email:    "new@example.com",
				username: "a-username-well-over-thirty-characters-long",
				password: "secret123",
				wantMsg:  "Username must be 3-30 characters",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc, _ := createTestAuthUsecase(t)

				user, token, err := uc.Signup(context.Background(), tt.email, tt.username, tt.password)

				assert.Nil(t, user)
				assert.Empty(t, token)

				var validationErr *domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantMsg, validationErr.Message)
			})
		}
	})

	t.Run("taken email or username", func(t *testing.T) {
		uc, m := createTestAuthUsecase(t)

		m.users.EXPECT().
			EmailOrUsernameExists(gomock.Any(), "new@example.com", "listener").
			Return(true, nil)

		_, _, err := uc.Signup(context.Background(), "new@example.com", "listener", "secret123")
		assert.ErrorIs(t, err, domain.ErrDuplicateUser)
	})

	t.Run("insert race surfaces as duplicate", func(t *testing.T) {
		uc, m := createTestAuthUsecase(t)

		m.users.EXPECT().
			EmailOrUsernameExists(gomock.Any(), "new@example.com", "listener").
			Return(false, nil)
		m.hasher.EXPECT().Hash("secret123").Return("salt:hash", nil)
		m.users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrDuplicateUser)

		_, _, err := uc.Signup(context.Background(), "new@example.com", "listener", "secret123")
		assert.ErrorIs(t, err, domain.ErrDuplicateUser)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	storedUser := &domain.User{
		ID:           "abc123",
		Email:        "user@example.com",
		Username:     "listener",
		PasswordHash: "salt:hash",
		AuthProvider: domain.AuthProviderEmail,
	}

	t.Run("successful login", func(t *testing.T) {
		uc, m := createTestAuthUsecase(t)

		m.users.EXPECT().
			GetByEmail(gomock.Any(), "user@example.com").
			Return(storedUser, nil)
		m.hasher.EXPECT().
			Verify("secret123", "salt:hash").
			Return(true)
		m.tokens.EXPECT().
			Issue(domain.ClaimsFor(storedUser)).
			Return("jwt-token", nil)

		user, token, err := uc.Login(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)

		assert.Equal(t, "jwt-token", token)
		assert.Equal(t, "abc123", user.ID)
	})

	t.Run("missing fields", func(t *testing.T) {
		uc, _ := createTestAuthUsecase(t)

		_, _, err := uc.Login(context.Background(), "user@example.com", "")

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Email and password are required", validationErr.Message)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, m := createTestAuthUsecase(t)

		m.users.EXPECT().
			GetByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.ErrUserNotFound)

		_, _, err := uc.Login(context.Background(), "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("oauth-only account has no password", func(t *testing.T) {
		uc, m := createTestAuthUsecase(t)

		oauthUser := &domain.User{ID: "abc123", Email: "user@example.com", AuthProvider: "google"}
		m.users.EXPECT().
			GetByEmail(gomock.Any(), "user@example.com").
			Return(oauthUser, nil)

		_, _, err := uc.Login(context.Background(), "user@example.com", "secret123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, m := createTestAuthUsecase(t)

		m.users.EXPECT().
			GetByEmail(gomock.Any(), "user@example.com").
			Return(storedUser, nil)
		m.hasher.EXPECT().
			Verify("wrong", "salt:hash").
			Return(false)

		_, _, err := uc.Login(context.Background(), "user@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthUsecase_GetProfile(t *testing.T) {
	uc, m := createTestAuthUsecase(t)

	storedUser := &domain.User{ID: "abc123", Email: "user@example.com"}
	m.users.EXPECT().
		GetByID(gomock.Any(), "abc123").
		Return(storedUser, nil)

	user, err := uc.GetProfile(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, storedUser, user)
}

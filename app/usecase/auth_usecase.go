package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// AuthUsecase implements password-based signup and login
type AuthUsecase struct {
	users  port.UserRepository
	hasher port.PasswordHasher
	tokens port.TokenService
	logger *slog.Logger
}

// NewAuthUsecase creates a new AuthUsecase instance
func NewAuthUsecase(users port.UserRepository, hasher port.PasswordHasher, tokens port.TokenService, logger *slog.Logger) port.AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("component", "auth_usecase"),
	}
}

// Signup creates a password-based account and issues a session token.
// Validation order matches the public API contract: required fields,
// then password length, then username length.
func (uc *AuthUsecase) Signup(ctx context.Context, email, username, password string) (*domain.User, string, error) {
	if email == "" || username == "" || password == "" {
		return nil, "", domain.NewValidationError("", "Email, username, and password are required")
	}
	if len(password) < domain.PasswordMinLength {
		return nil, "", domain.NewValidationError("password", "Password must be at least 6 characters")
	}
	if len(username) < domain.UsernameMinLength || len(username) > domain.UsernameMaxLength {
		return nil, "", domain.NewValidationError("username", "Username must be 3-30 characters")
	}

	exists, err := uc.users.EmailOrUsernameExists(ctx, email, username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, "", domain.ErrDuplicateUser
	}

	passwordHash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(email, username, passwordHash)
	// The pre-check races with concurrent signups; the unique
	// constraints have the final word.
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := uc.tokens.Issue(domain.ClaimsFor(user))
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Info("user signed up", "user_id", user.ID)
	return user, token, nil
}

// Login verifies credentials and issues a session token. Unknown
// email, password-less OAuth account and wrong password all return
// domain.ErrInvalidCredentials.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.NewValidationError("", "Email and password are required")
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}

	if !user.HasPassword() || !uc.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(domain.ClaimsFor(user))
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// GetProfile loads the current user's profile
func (uc *AuthUsecase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

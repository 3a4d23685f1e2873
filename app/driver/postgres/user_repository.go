package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

const userColumns = `
		id, email, username,
		COALESCE(password_hash, ''),
		auth_provider,
		COALESCE(auth_provider_id, ''),
		COALESCE(avatar_url, ''),
		created_at, updated_at`

// UserRepository implements port.UserRepository for PostgreSQL
type UserRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

// Create inserts a new user. Empty password hash, provider id and
// avatar are stored as NULL so the partial unique index on
// (auth_provider, auth_provider_id) ignores password accounts.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			id, email, username, password_hash,
			auth_provider, auth_provider_id, avatar_url,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Username,
		nullable(user.PasswordHash),
		user.AuthProvider,
		nullable(user.AuthProviderID),
		nullable(user.AvatarURL),
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn("duplicate user rejected", "email", user.Email, "username", user.Username)
			return domain.ErrDuplicateUser
		}
		r.logger.Error("failed to create user", "user_id", user.ID, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("user created", "user_id", user.ID, "auth_provider", user.AuthProvider)
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT` + userColumns + `
		FROM users
		WHERE id = $1`

	return r.scanUser(ctx, query, id)
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT` + userColumns + `
		FROM users
		WHERE email = $1`

	return r.scanUser(ctx, query, domain.NormalizeEmail(email))
}

// GetByProvider retrieves a user by OAuth provider identity
func (r *UserRepository) GetByProvider(ctx context.Context, provider, providerID string) (*domain.User, error) {
	query := `SELECT` + userColumns + `
		FROM users
		WHERE auth_provider = $1 AND auth_provider_id = $2`

	return r.scanUser(ctx, query, provider, providerID)
}

// EmailOrUsernameExists reports whether either identifier is taken
func (r *UserRepository) EmailOrUsernameExists(ctx context.Context, email, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, domain.NormalizeEmail(email), username).Scan(&exists); err != nil {
		r.logger.Error("failed to check user existence", "error", err)
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// UsernameExists reports whether a username is taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		r.logger.Error("failed to check username", "username", username, "error", err)
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return exists, nil
}

// UpdateAvatar refreshes the stored avatar URL
func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	query := `
		UPDATE users
		SET avatar_url = $2, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, nullable(avatarURL))
	if err != nil {
		r.logger.Error("failed to update avatar", "user_id", id, "error", err)
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// LinkProvider attaches an OAuth identity to an existing account. The
// avatar is only filled when the account has none, so a linked login
// never overwrites a chosen avatar.
func (r *UserRepository) LinkProvider(ctx context.Context, id, provider, providerID, avatarURL string) (*domain.User, error) {
	query := `
		UPDATE users
		SET auth_provider = $2,
		    auth_provider_id = $3,
		    avatar_url = COALESCE(avatar_url, $4),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING` + userColumns

	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, id, provider, nullable(providerID), nullable(avatarURL)).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.AuthProvider,
		&user.AuthProviderID,
		&user.AvatarURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateUser
		}
		r.logger.Error("failed to link provider", "user_id", id, "provider", provider, "error", err)
		return nil, fmt.Errorf("failed to link provider: %w", err)
	}

	r.logger.Info("provider linked", "user_id", id, "provider", provider)
	return user, nil
}

func (r *UserRepository) scanUser(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.AuthProvider,
		&user.AuthProviderID,
		&user.AvatarURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("failed to get user", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// nullable maps an empty string to NULL
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

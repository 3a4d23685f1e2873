package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go -package=mocks

import (
	"context"

	"audiooasis-api/app/domain"
)

// UserRepository defines user data access. Uniqueness of email,
// username and (provider, provider id) is backed by database
// constraints; Create surfaces a violation as domain.ErrDuplicateUser.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByProvider(ctx context.Context, provider, providerID string) (*domain.User, error)
	EmailOrUsernameExists(ctx context.Context, email, username string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdateAvatar(ctx context.Context, id, avatarURL string) error

	// LinkProvider attaches an OAuth provider to an existing account,
	// filling the avatar only when none is set, and returns the
	// updated user.
	LinkProvider(ctx context.Context, id, provider, providerID, avatarURL string) (*domain.User, error)
}

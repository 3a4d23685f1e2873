package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go -package=mocks

import (
	"context"

	"audiooasis-api/app/domain"
)

// AuthUsecase defines the password-based authentication business logic
type AuthUsecase interface {
	// Signup creates a new password-based account and issues a session
	// token for it.
	Signup(ctx context.Context, email, username, password string) (*domain.User, string, error)

	// Login verifies email/password credentials and issues a session
	// token. All failure modes return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// GetProfile loads the current user's profile.
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}

// OAuthUsecase drives the OAuth redirect/callback exchange
type OAuthUsecase interface {
	// AuthorizeURL builds the provider authorization redirect URL.
	// Returns domain.ErrProviderNotConfigured when the provider has no
	// registered client credentials.
	AuthorizeURL(provider string) (string, error)

	// HandleCallback runs the full callback sequence (code exchange,
	// user-info fetch, identity resolution, token issuance) and always
	// returns a frontend redirect URL, carrying either the session
	// token in a fragment or an auth_error query parameter.
	HandleCallback(ctx context.Context, provider, code, providerErr string) string
}

// TokenService issues and verifies stateless session tokens
type TokenService interface {
	Issue(claims *domain.SessionClaims) (string, error)

	// Verify returns domain.ErrTokenExpired for expired tokens and
	// domain.ErrInvalidToken for every other failure.
	Verify(token string) (*domain.SessionClaims, error)
}

// PasswordHasher derives and verifies salted password hashes
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Verify fails closed: malformed stored credentials return false.
	Verify(password, stored string) bool
}

// OAuthProvider is a per-provider adapter describing endpoints and
// normalizing user-info responses into the canonical identity shape
type OAuthProvider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
	FetchIdentity(ctx context.Context, accessToken string) (*domain.OAuthIdentity, error)
}

// OAuthGateway hides the provider registry behind the two operations
// the callback flow needs
type OAuthGateway interface {
	AuthorizeURL(provider string) (string, error)

	// FetchUser exchanges the authorization code and returns the
	// normalized identity. Failures are *domain.OAuthError values.
	FetchUser(ctx context.Context, provider, code string) (*domain.OAuthIdentity, error)
}

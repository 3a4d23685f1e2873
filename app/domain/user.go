package domain

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuthProviderEmail marks accounts that authenticate with a password.
// Any other value names the OAuth provider the account is linked to.
const AuthProviderEmail = "email"

// Username and password constraints shared by signup validation and
// OAuth username sanitization.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 30
	PasswordMinLength = 6
)

// User represents a user account in the system
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"` // Exclude from JSON
	AuthProvider   string    `json:"auth_provider"`
	AuthProviderID string    `json:"-"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasPassword reports whether the account can log in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// NewUser creates a password-based user. The caller validates input and
// hashes the password beforehand.
func NewUser(email, username, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           NewID(),
		Email:        NormalizeEmail(email),
		Username:     username,
		PasswordHash: passwordHash,
		AuthProvider: AuthProviderEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewOAuthUser creates a user from a normalized provider identity. No
// password credential is set; the account can only log in via OAuth.
func NewOAuthUser(provider string, identity *OAuthIdentity, username string) *User {
	now := time.Now().UTC()
	return &User{
		ID:             NewID(),
		Email:          NormalizeEmail(identity.Email),
		Username:       username,
		AuthProvider:   provider,
		AuthProviderID: identity.ProviderID,
		AvatarURL:      identity.AvatarURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NewID generates an opaque identifier: a UUID with the dashes
// stripped, matching the 32-hex id shape used across the API.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NormalizeEmail lowercases an email address for case-insensitive
// uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var usernameInvalidChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SanitizeUsername turns a raw provider username into a valid local
// username: every disallowed character becomes "_", the result is cut
// to the maximum length, and anything still shorter than the minimum is
// replaced with "user_" plus a providerID prefix.
func SanitizeUsername(raw, providerID string) string {
	username := usernameInvalidChars.ReplaceAllString(raw, "_")
	if len(username) > UsernameMaxLength {
		username = username[:UsernameMaxLength]
	}
	if len(username) < UsernameMinLength {
		prefix := providerID
		if len(prefix) > 8 {
			prefix = prefix[:8]
		}
		username = "user_" + prefix
	}
	return username
}

// UsernameSuffix returns a random 6-hex-char suffix used to break a
// username collision during OAuth signup.
func UsernameSuffix() string {
	b := make([]byte, 3)
	rand.Read(b)
	return hex.EncodeToString(b)
}

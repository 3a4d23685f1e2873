package domain

import "errors"

// Authentication and account errors
var (
	// Credential errors. Login failures share a single message so the
	// response never reveals whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Account errors
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("email or username already taken")

	// OAuth configuration errors
	ErrProviderNotConfigured = errors.New("oauth provider not configured")

	// Resource errors
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

// ValidationError represents a user-correctable input error with
// field-level detail
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// OAuth error codes surfaced to the frontend as redirect query
// parameters.
const (
	OAuthErrTokenFailed = "token_failed"
	OAuthErrNoEmail     = "no_email"
	OAuthErrServer      = "server_error"
)

// OAuthError represents a failure inside the OAuth callback sequence.
// The Code is what the frontend sees; Cause carries the underlying
// error for logging only.
type OAuthError struct {
	Code  string
	Cause error
}

func (e *OAuthError) Error() string {
	if e.Cause != nil {
		return "oauth " + e.Code + ": " + e.Cause.Error()
	}
	return "oauth " + e.Code
}

func (e *OAuthError) Unwrap() error {
	return e.Cause
}

// NewOAuthError creates a new OAuth flow error
func NewOAuthError(code string, cause error) *OAuthError {
	return &OAuthError{Code: code, Cause: cause}
}

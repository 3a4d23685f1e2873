package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"audiooasis-api/app/domain"
)

// Config holds JWT signing configuration. A single shared symmetric
// key; no rotation and no key id in the header.
type Config struct {
	Secret string
	TTL    time.Duration
}

// sessionClaims is the wire shape of a session token payload.
type sessionClaims struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 session tokens.
// Implements port.TokenService.
type JWTService struct {
	cfg Config
}

// NewJWTService creates a new JWT token service
func NewJWTService(cfg Config) *JWTService {
	return &JWTService{cfg: cfg}
}

// Issue signs a session token carrying the given claims plus iat/exp.
func (s *JWTService) Issue(claims *domain.SessionClaims) (string, error) {
	now := time.Now()
	payload := sessionClaims{
		ID:       claims.ID,
		Email:    claims.Email,
		Username: claims.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry of an inbound token and
// returns its claims. Expired tokens map to domain.ErrTokenExpired;
// every other failure maps to domain.ErrInvalidToken.
func (s *JWTService) Verify(tokenString string) (*domain.SessionClaims, error) {
	claims := &sessionClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}

	return &domain.SessionClaims{
		ID:       claims.ID,
		Email:    claims.Email,
		Username: claims.Username,
	}, nil
}

package gateway

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/oauth2"

	"audiooasis-api/app/domain"
	oauthdrv "audiooasis-api/app/driver/oauth"
	"audiooasis-api/app/port"
)

// ProviderRegistry resolves provider names to adapters
type ProviderRegistry interface {
	Get(name string) (port.OAuthProvider, error)
}

// OAuthGateway implements port.OAuthGateway on top of the provider
// registry. It owns the error mapping between raw provider failures
// and the OAuth error codes the frontend sees.
type OAuthGateway struct {
	registry ProviderRegistry
	logger   *slog.Logger
}

// NewOAuthGateway creates a new OAuth gateway
func NewOAuthGateway(registry ProviderRegistry, logger *slog.Logger) port.OAuthGateway {
	return &OAuthGateway{
		registry: registry,
		logger:   logger.With("component", "oauth_gateway"),
	}
}

// AuthorizeURL builds the provider authorization URL with a freshly
// generated opaque state value.
func (g *OAuthGateway) AuthorizeURL(provider string) (string, error) {
	p, err := g.registry.Get(provider)
	if err != nil {
		return "", err
	}

	state := domain.NewID()
	authURL := p.AuthCodeURL(state)

	g.logger.Info("built authorization redirect", "provider", provider)
	return authURL, nil
}

// FetchUser exchanges the authorization code and normalizes the
// provider's user info into a canonical identity. Every failure comes
// back as a *domain.OAuthError so the caller can redirect with the
// right error code.
func (g *OAuthGateway) FetchUser(ctx context.Context, provider, code string) (*domain.OAuthIdentity, error) {
	p, err := g.registry.Get(provider)
	if err != nil {
		return nil, domain.NewOAuthError(domain.OAuthErrServer, err)
	}

	accessToken, err := p.Exchange(ctx, code)
	if err != nil {
		g.logger.Error("token exchange failed", "provider", provider, "error", err)
		return nil, domain.NewOAuthError(exchangeErrorCode(err), err)
	}

	identity, err := p.FetchIdentity(ctx, accessToken)
	if err != nil {
		g.logger.Error("user info fetch failed", "provider", provider, "error", err)
		return nil, domain.NewOAuthError(domain.OAuthErrServer, err)
	}

	if identity.Email == "" {
		g.logger.Warn("provider returned no email", "provider", provider)
		return nil, domain.NewOAuthError(domain.OAuthErrNoEmail, nil)
	}

	return identity, nil
}

// exchangeErrorCode distinguishes a provider that answered without an
// access token (token_failed) from a transport failure (server_error).
func exchangeErrorCode(err error) string {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) || errors.Is(err, oauthdrv.ErrNoAccessToken) {
		return domain.OAuthErrTokenFailed
	}
	return domain.OAuthErrServer
}

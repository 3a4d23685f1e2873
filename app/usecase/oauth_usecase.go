package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// OAuthUsecase drives the OAuth callback pipeline: code exchange,
// identity resolution and token issuance, ending in a frontend
// redirect either way.
type OAuthUsecase struct {
	gateway     port.OAuthGateway
	users       port.UserRepository
	tokens      port.TokenService
	frontendURL string
	logger      *slog.Logger
}

// NewOAuthUsecase creates a new OAuthUsecase instance
func NewOAuthUsecase(gateway port.OAuthGateway, users port.UserRepository, tokens port.TokenService, frontendURL string, logger *slog.Logger) port.OAuthUsecase {
	return &OAuthUsecase{
		gateway:     gateway,
		users:       users,
		tokens:      tokens,
		frontendURL: frontendURL,
		logger:      logger.With("component", "oauth_usecase"),
	}
}

// AuthorizeURL builds the provider authorization redirect URL
func (uc *OAuthUsecase) AuthorizeURL(provider string) (string, error) {
	return uc.gateway.AuthorizeURL(provider)
}

// HandleCallback runs the callback sequence and always returns a
// frontend redirect URL. Successful logins carry the token in the
// fragment so it never shows up in server logs; failures carry an
// auth_error query parameter.
func (uc *OAuthUsecase) HandleCallback(ctx context.Context, provider, code, providerErr string) string {
	if providerErr != "" {
		uc.logger.Warn("provider returned error", "provider", provider, "error", providerErr)
		return uc.errorRedirect(providerErr)
	}
	if code == "" {
		return uc.errorRedirect("no_code")
	}

	identity, err := uc.gateway.FetchUser(ctx, provider, code)
	if err != nil {
		var oauthErr *domain.OAuthError
		if errors.As(err, &oauthErr) {
			return uc.errorRedirect(oauthErr.Code)
		}
		uc.logger.Error("callback failed", "provider", provider, "error", err)
		return uc.errorRedirect(domain.OAuthErrServer)
	}

	user, err := uc.resolveOrCreate(ctx, provider, identity)
	if err != nil {
		uc.logger.Error("identity resolution failed", "provider", provider, "error", err)
		return uc.errorRedirect(domain.OAuthErrServer)
	}

	token, err := uc.tokens.Issue(domain.ClaimsFor(user))
	if err != nil {
		uc.logger.Error("token issuance failed", "user_id", user.ID, "error", err)
		return uc.errorRedirect(domain.OAuthErrServer)
	}

	uc.logger.Info("oauth login completed", "provider", provider, "user_id", user.ID)
	return uc.frontendURL + "#auth_token=" + token
}

// resolveOrCreate maps a provider identity onto a local account:
// an exact (provider, provider id) match wins, then an email match
// links the provider to the existing account, otherwise a new account
// is created with a sanitized username.
func (uc *OAuthUsecase) resolveOrCreate(ctx context.Context, provider string, identity *domain.OAuthIdentity) (*domain.User, error) {
	user, err := uc.users.GetByProvider(ctx, provider, identity.ProviderID)
	if err == nil {
		if identity.AvatarURL != "" && identity.AvatarURL != user.AvatarURL {
			if err := uc.users.UpdateAvatar(ctx, user.ID, identity.AvatarURL); err != nil {
				return nil, err
			}
			user.AvatarURL = identity.AvatarURL
		}
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	existing, err := uc.users.GetByEmail(ctx, identity.Email)
	if err == nil {
		uc.logger.Info("linking provider to existing account", "provider", provider, "user_id", existing.ID)
		return uc.users.LinkProvider(ctx, existing.ID, provider, identity.ProviderID, identity.AvatarURL)
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	username := domain.SanitizeUsername(identity.Username, identity.ProviderID)
	taken, err := uc.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		username = username + "_" + domain.UsernameSuffix()
	}

	// A racing signup can still take the username or email; the unique
	// constraints surface that as a duplicate error.
	newUser := domain.NewOAuthUser(provider, identity, username)
	if err := uc.users.Create(ctx, newUser); err != nil {
		return nil, err
	}

	uc.logger.Info("oauth account created", "provider", provider, "user_id", newUser.ID)
	return newUser, nil
}

func (uc *OAuthUsecase) errorRedirect(code string) string {
	return uc.frontendURL + "?auth_error=" + url.QueryEscape(code)
}

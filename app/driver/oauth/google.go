package oauth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"

	"audiooasis-api/app/domain"
)

const (
	googleName        = "google"
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// GoogleProvider adapts Google's OAuth2 endpoints and userinfo
// response. Implements port.OAuthProvider.
type GoogleProvider struct {
	cfg         *oauth2.Config
	userInfoURL string
}

// NewGoogleProvider creates a Google provider adapter
func NewGoogleProvider(creds Credentials, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		cfg: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  redirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  googleAuthURL,
				TokenURL: googleTokenURL,
			},
			Scopes: []string{"openid", "email", "profile"},
		},
		userInfoURL: googleUserInfoURL,
	}
}

// Name returns the provider identifier used by the registry.
func (p *GoogleProvider) Name() string {
	return googleName
}

// AuthCodeURL builds the authorization URL. Google gets online access
// with a forced consent screen.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state,
		oauth2.SetAuthURLParam("access_type", "online"),
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange swaps the authorization code for an access token.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (string, error) {
	return exchangeCode(ctx, p.cfg, code)
}

// FetchIdentity fetches and normalizes the Google userinfo response.
func (p *GoogleProvider) FetchIdentity(ctx context.Context, accessToken string) (*domain.OAuthIdentity, error) {
	var raw struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}

	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	if err := getJSON(ctx, p.userInfoURL, headers, &raw); err != nil {
		return nil, fmt.Errorf("google userinfo fetch failed: %w", err)
	}

	// Google has no stable handle: fall back from display name to the
	// local part of the email.
	username := raw.Name
	if username == "" && raw.Email != "" {
		username, _, _ = strings.Cut(raw.Email, "@")
	}

	return &domain.OAuthIdentity{
		ProviderID: raw.ID,
		Email:      raw.Email,
		Username:   username,
		AvatarURL:  raw.Picture,
	}, nil
}

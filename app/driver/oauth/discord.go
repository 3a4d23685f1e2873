package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"audiooasis-api/app/domain"
)

const (
	discordName      = "discord"
	discordAuthURL   = "https://discord.com/api/oauth2/authorize"
	discordTokenURL  = "https://discord.com/api/oauth2/token"
	discordMeURL     = "https://discord.com/api/users/@me"
	discordAvatarCDN = "https://cdn.discordapp.com/avatars"
)

// DiscordProvider adapts Discord's OAuth2 endpoints and @me response.
// Implements port.OAuthProvider.
type DiscordProvider struct {
	cfg   *oauth2.Config
	meURL string
}

// NewDiscordProvider creates a Discord provider adapter
func NewDiscordProvider(creds Credentials, redirectURL string) *DiscordProvider {
	return &DiscordProvider{
		cfg: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  redirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  discordAuthURL,
				TokenURL: discordTokenURL,
			},
			Scopes: []string{"identify", "email"},
		},
		meURL: discordMeURL,
	}
}

// Name returns the provider identifier used by the registry.
func (p *DiscordProvider) Name() string {
	return discordName
}

// AuthCodeURL builds the authorization URL. Discord needs an explicit
// prompt to always show the consent screen.
func (p *DiscordProvider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange swaps the authorization code for an access token.
func (p *DiscordProvider) Exchange(ctx context.Context, code string) (string, error) {
	return exchangeCode(ctx, p.cfg, code)
}

// FetchIdentity fetches and normalizes the Discord @me response.
// Discord returns an avatar hash rather than a URL, so the CDN URL is
// built here.
func (p *DiscordProvider) FetchIdentity(ctx context.Context, accessToken string) (*domain.OAuthIdentity, error) {
	var raw struct {
		ID         string `json:"id"`
		Username   string `json:"username"`
		GlobalName string `json:"global_name"`
		Email      string `json:"email"`
		Avatar     string `json:"avatar"`
	}

	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	if err := getJSON(ctx, p.meURL, headers, &raw); err != nil {
		return nil, fmt.Errorf("discord user fetch failed: %w", err)
	}

	username := raw.Username
	if username == "" {
		username = raw.GlobalName
	}
	if username == "" {
		username = "discord_" + raw.ID
	}

	var avatarURL string
	if raw.Avatar != "" {
		avatarURL = fmt.Sprintf("%s/%s/%s.png", discordAvatarCDN, raw.ID, raw.Avatar)
	}

	return &domain.OAuthIdentity{
		ProviderID: raw.ID,
		Email:      raw.Email,
		Username:   username,
		AvatarURL:  avatarURL,
	}, nil
}

package oauth

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/oauth2"

	"audiooasis-api/app/domain"
)

const (
	githubName      = "github"
	githubAuthURL   = "https://github.com/login/oauth/authorize"
	githubTokenURL  = "https://github.com/login/oauth/access_token"
	githubUserURL   = "https://api.github.com/user"
	githubEmailsURL = "https://api.github.com/user/emails"

	// GitHub rejects requests without a User-Agent.
	githubUserAgent = "AudioOasis-App"
)

// GitHubProvider adapts GitHub's OAuth2 endpoints and user API.
// Implements port.OAuthProvider.
type GitHubProvider struct {
	cfg       *oauth2.Config
	userURL   string
	emailsURL string
}

// NewGitHubProvider creates a GitHub provider adapter
func NewGitHubProvider(creds Credentials, redirectURL string) *GitHubProvider {
	return &GitHubProvider{
		cfg: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  redirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  githubAuthURL,
				TokenURL: githubTokenURL,
			},
			Scopes: []string{"read:user", "user:email"},
		},
		userURL:   githubUserURL,
		emailsURL: githubEmailsURL,
	}
}

// Name returns the provider identifier used by the registry.
func (p *GitHubProvider) Name() string {
	return githubName
}

// AuthCodeURL builds the authorization URL.
func (p *GitHubProvider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state)
}

// Exchange swaps the authorization code for an access token.
func (p *GitHubProvider) Exchange(ctx context.Context, code string) (string, error) {
	return exchangeCode(ctx, p.cfg, code)
}

// FetchIdentity fetches and normalizes the GitHub user profile. The
// profile often omits the email, in which case the authenticated
// emails endpoint supplies one.
func (p *GitHubProvider) FetchIdentity(ctx context.Context, accessToken string) (*domain.OAuthIdentity, error) {
	headers := map[string]string{
		// GitHub's API uses the "token" scheme rather than "Bearer".
		"Authorization": "token " + accessToken,
		"User-Agent":    githubUserAgent,
	}

	var raw struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := getJSON(ctx, p.userURL, headers, &raw); err != nil {
		return nil, fmt.Errorf("github user fetch failed: %w", err)
	}

	email := raw.Email
	if email == "" {
		var err error
		email, err = p.fetchPrimaryEmail(ctx, headers)
		if err != nil {
			return nil, err
		}
	}

	return &domain.OAuthIdentity{
		ProviderID: strconv.FormatInt(raw.ID, 10),
		Email:      email,
		Username:   raw.Login,
		AvatarURL:  raw.AvatarURL,
	}, nil
}

// fetchPrimaryEmail selects the first primary+verified address from
// the emails endpoint, falling back to the first entry. An empty list
// yields no email and the flow fails upstream.
func (p *GitHubProvider) fetchPrimaryEmail(ctx context.Context, headers map[string]string) (string, error) {
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := getJSON(ctx, p.emailsURL, headers, &emails); err != nil {
		return "", fmt.Errorf("github emails fetch failed: %w", err)
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	if len(emails) > 0 {
		return emails[0].Email, nil
	}
	return "", nil
}

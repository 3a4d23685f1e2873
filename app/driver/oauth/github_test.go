package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubProvider_AuthCodeURL(t *testing.T) {
	p := NewGitHubProvider(Credentials{ClientID: "client-id", ClientSecret: "secret"},
		"https://api.example.com/auth/callback/github")

	parsed, err := url.Parse(p.AuthCodeURL("state-456"))
	require.NoError(t, err)
	assert.Equal(t, "github.com", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "state-456", query.Get("state"))
	assert.Equal(t, "read:user user:email", query.Get("scope"))
}

func TestGitHubProvider_FetchIdentity_EmailInProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token the-token", r.Header.Get("Authorization"))
		assert.Equal(t, githubUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":4242,"login":"octocat","email":"octo@example.com","avatar_url":"https://avatars.example.com/u/4242"}`))
	}))
	defer server.Close()

	p := NewGitHubProvider(Credentials{ClientID: "id", ClientSecret: "secret"}, "cb")
	p.userURL = server.URL

	identity, err := p.FetchIdentity(context.Background(), "the-token")
	require.NoError(t, err)
	assert.Equal(t, "4242", identity.ProviderID)
	assert.Equal(t, "octocat", identity.Username)
	assert.Equal(t, "octo@example.com", identity.Email)
	assert.Equal(t, "https://avatars.example.com/u/4242", identity.AvatarURL)
}

func TestGitHubProvider_FetchIdentity_EmailFallback(t *testing.T) {
	tests := []struct {
		name      string
		emailJSON string
		expected  string
	}{
		{
			name:      "primary verified wins",
			emailJSON: `[{"email":"old@example.com","primary":false,"verified":true},{"email":"main@example.com","primary":true,"verified":true}]`,
			expected:  "main@example.com",
		},
		{
			name:      "no primary verified falls back to first",
			emailJSON: `[{"email":"first@example.com","primary":false,"verified":false},{"email":"second@example.com","primary":true,"verified":false}]`,
			expected:  "first@example.com",
		},
		{
			name:      "empty list yields no email",
			emailJSON: `[]`,
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"id":7,"login":"ghost","email":null,"avatar_url":""}`))
			})
			mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "token the-token", r.Header.Get("Authorization"))
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.emailJSON))
			})
			server := httptest.NewServer(mux)
			defer server.Close()

			p := NewGitHubProvider(Credentials{ClientID: "id", ClientSecret: "secret"}, "cb")
			p.userURL = server.URL + "/user"
			p.emailsURL = server.URL + "/user/emails"

			identity, err := p.FetchIdentity(context.Background(), "the-token")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, identity.Email)
			assert.Equal(t, "7", identity.ProviderID)
			assert.Equal(t, "ghost", identity.Username)
		})
	}
}

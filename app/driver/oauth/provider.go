package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"audiooasis-api/app/domain"
	"audiooasis-api/app/port"
)

// requestTimeout bounds every outbound provider call (token exchange
// and user-info fetch).
const requestTimeout = 10 * time.Second

// Credentials holds one provider's registered client id/secret pair.
// An empty pair disables that provider without affecting the others.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Configured reports whether the provider can be registered.
func (c Credentials) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Registry maps provider names to adapters. Only providers with
// configured credentials are registered, so lookups for the rest fail
// with domain.ErrProviderNotConfigured.
type Registry struct {
	providers map[string]port.OAuthProvider
}

// NewRegistry registers the given provider adapters by name
func NewRegistry(list ...port.OAuthProvider) *Registry {
	m := make(map[string]port.OAuthProvider, len(list))
	for _, p := range list {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

// Get returns the adapter for a provider name
func (r *Registry) Get(name string) (port.OAuthProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrProviderNotConfigured)
	}
	return p, nil
}

// Names returns the registered provider names
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// httpClient is shared by all adapters so every provider call carries
// the same timeout.
var httpClient = &http.Client{Timeout: requestTimeout}

// ErrNoAccessToken marks a token endpoint response that parsed but
// carried no access token.
var ErrNoAccessToken = errors.New("token response missing access token")

// exchangeCode swaps an authorization code for an access token via the
// provider token endpoint.
func exchangeCode(ctx context.Context, cfg *oauth2.Config, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		// oauth2 reports an empty access_token in a 2xx response as a
		// plain error; normalize it so callers can tell it apart from
		// transport failures.
		if strings.Contains(err.Error(), "missing access_token") {
			return "", ErrNoAccessToken
		}
		return "", fmt.Errorf("code exchange failed: %w", err)
	}
	if token.AccessToken == "" {
		return "", ErrNoAccessToken
	}

	return token.AccessToken, nil
}

// getJSON performs an authenticated GET against a provider endpoint
// and decodes the JSON response.
func getJSON(ctx context.Context, url string, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, url, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return nil
}

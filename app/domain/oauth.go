package domain

// OAuthIdentity is the provider-agnostic identity shape produced by a
// provider adapter from a raw user-info response. IdentityResolver
// consumes it without knowing which provider it came from.
type OAuthIdentity struct {
	ProviderID string
	Email      string
	Username   string
	AvatarURL  string
}

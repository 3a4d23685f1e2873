package handlers

import "audiooasis-api/app/domain"

// ErrorResponse is the error body shape shared by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse acknowledges a mutation that returns no payload
type OKResponse struct {
	OK bool `json:"ok"`
}

// UserPayload is the public user shape returned by auth endpoints
type UserPayload struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func newUserPayload(user *domain.User) UserPayload {
	return UserPayload{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
	}
}

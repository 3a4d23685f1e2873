package domain

// SessionClaims is the identity carried by a session token. Downstream
// handlers treat it as the authenticated request principal.
type SessionClaims struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// ClaimsFor builds the session claims issued for a resolved user.
func ClaimsFor(user *User) *SessionClaims {
	return &SessionClaims{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	}
}

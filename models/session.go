package models

import "time"

// Session is the token material the auth backend issues on a successful
// sign-in. The portal never stores sessions itself, they travel as
// HTTP cookies set by the backend and replayed by the auth proxies.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Token is a parsed access token. SignedString is the raw JWT;
// UserID is the subject claim.
type Token struct {
	SignedString string
	UserID       string
	ExpiresAt    time.Time
}

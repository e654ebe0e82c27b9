package models

import "time"

// UserMetadata carries the free-form attributes the auth backend stores
// alongside an account. Only the display name is used by the portal.
type UserMetadata struct {
	Name string `json:"name,omitempty"`
}

// User is the authenticated identity as reported by the hosted auth
// backend. ID is the canonical key; Email is the natural login key.
// The portal never mutates a User directly; password and metadata
// changes go through the backend's own update API.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
	CreatedAt    time.Time    `json:"created_at"`
}

// DisplayName returns the metadata name when present, otherwise the
// part of the e-mail address before "@".
func (u User) DisplayName() string {
	if u.UserMetadata.Name != "" {
		return u.UserMetadata.Name
	}
	for i := 0; i < len(u.Email); i++ {
		if u.Email[i] == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}

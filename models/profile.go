package models

import (
	"encoding/json"
	"time"
)

// Role values stored in the profiles table. The column is a free-form
// string; only RoleAdmin is interpreted specially by the portal.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Profile is the per-user row kept in the backend's "profiles" table.
// Every User is expected to have exactly one Profile; creation is
// attempted redundantly after login and signup as a fallback, so the
// insert must be duplicate-safe.
type Profile struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// IsAdmin reports whether the profile grants access to the admin-only
// navigation entries.
func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

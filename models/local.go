package models

import "time"

// StoredCookie is a session cookie persisted in the client's local
// database so a signed-in session survives client restarts.
type StoredCookie struct {
	Name    string
	Value   string
	Expires time.Time
}

// RecentView is one locally recorded catalog visit. Views are stored
// only on the client device.
type RecentView struct {
	PropertyID string
	ViewedAt   time.Time
}

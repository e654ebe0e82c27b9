// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

// Package adapter provides the transport layer between the TUI client
// and the portal server.
//
// The primary abstraction is [PortalAdapter], which decouples the
// client application from the HTTP wire format. Authentication rides on
// cookies held in an in-process jar; successful logins, signups and
// logouts are announced to subscribers registered via OnAuthChange so
// the session observer stays current without polling.
//
// Error values defined in errors.go are mapped from HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] for status-code
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotImplemented] for
// the disabled magic-link flow).
package adapter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/domy-v-italii/portal/models"
)

// Region is a catalog region with its name and summary already
// resolved to the requested language by the portal.
type Region struct {
	models.Region
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// PortalAdapter defines the client's view of the portal API.
type PortalAdapter interface {
	// Login signs in with e-mail and password. On success the session
	// cookies are retained in the adapter's jar and auth subscribers
	// are notified.
	Login(ctx context.Context, email, password string) (*models.AuthUser, error)

	// Signup creates an account. hasSession is false when the portal
	// reports the session was withheld pending e-mail confirmation; in
	// that case no auth change is announced.
	Signup(ctx context.Context, name, email, password string) (user *models.AuthUser, hasSession bool, err error)

	// Logout invalidates the session and announces the sign-out.
	Logout(ctx context.Context) error

	// MagicLink requests a magic-link sign-in. The portal has the flow
	// disabled, so this returns ErrNotImplemented with the portal's
	// explanation.
	MagicLink(ctx context.Context, email string) error

	// Session resolves the cookies currently in the jar to a user.
	// A nil user with nil error means anonymous.
	Session(ctx context.Context) (*models.User, error)

	// OnAuthChange registers fn to run whenever the signed-in user
	// changes. The returned function removes the registration.
	OnAuthChange(fn func(user *models.User)) (unsubscribe func())

	// Cookies exports the jar's portal cookies for persistence across
	// client restarts; RestoreCookies loads them back.
	Cookies() []*http.Cookie
	RestoreCookies(cookies []*http.Cookie)

	Profile(ctx context.Context) (models.Profile, error)

	Regions(ctx context.Context, language string) ([]Region, error)
	Properties(ctx context.Context, regionSlug string) ([]models.Property, error)
	Property(ctx context.Context, propertyID string) (models.Property, error)

	Favorites(ctx context.Context) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, propertyID string) error
	RemoveFavorite(ctx context.Context, propertyID string) error

	Inquiries(ctx context.Context) ([]models.Inquiry, error)
	CreateInquiry(ctx context.Context, propertyID, message string) (models.Inquiry, error)

	SavedSearches(ctx context.Context) ([]models.SavedSearch, error)
	CreateSavedSearch(ctx context.Context, name string, criteria json.RawMessage) error
	DeleteSavedSearch(ctx context.Context, searchID string) error

	Webinars(ctx context.Context) ([]models.Webinar, error)
	RegisterForWebinar(ctx context.Context, webinarID string) error

	ConciergeTickets(ctx context.Context) ([]models.ConciergeTicket, error)
	CreateConciergeTicket(ctx context.Context, subject, body string) error

	Documents(ctx context.Context) ([]models.Document, error)
	UploadDocument(ctx context.Context, fileName, contentType string, data []byte) (models.Document, error)
	DownloadDocument(ctx context.Context, documentID string) (data []byte, contentType string, err error)
}

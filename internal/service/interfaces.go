package service

import (
	"context"
	"encoding/json"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// BackendAuth is the slice of the backend SDK the auth service needs.
// *backend.Client satisfies it.
type BackendAuth interface {
	Configured() bool
	SignInWithPassword(ctx context.Context, jar *backend.CookieJar, email, password string) (*models.User, error)
	SignUp(ctx context.Context, jar *backend.CookieJar, name, email, password string) (*models.User, *models.Session, error)
	SignOut(ctx context.Context, jar *backend.CookieJar) error
	GetUser(ctx context.Context, jar *backend.CookieJar) (*models.User, error)
}

// AuthService drives the portal's auth proxy endpoints: password login
// and signup forwarded to the backend, session resolution, logout.
// Validation failures never reach the backend.
type AuthService interface {
	Login(ctx context.Context, jar *backend.CookieJar, email, password string) (*models.User, error)
	Signup(ctx context.Context, jar *backend.CookieJar, name, email, password string) (*models.User, bool, error)
	Logout(ctx context.Context, jar *backend.CookieJar) error
	Session(ctx context.Context, jar *backend.CookieJar) (*models.User, error)
	MagicLink(ctx context.Context, email string) error
}

// ProfileService maintains the per-user profile row.
type ProfileService interface {
	EnsureProfile(ctx context.Context, jar *backend.CookieJar, user *models.User) error
	FetchProfile(ctx context.Context, jar *backend.CookieJar, userID string) (models.Profile, error)
}

// DashboardService covers the signed-in area: favorites, inquiries,
// saved searches, webinars, concierge tickets and documents.
type DashboardService interface {
	Favorites(ctx context.Context, jar *backend.CookieJar, userID string) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, jar *backend.CookieJar, userID, propertyID string) error
	RemoveFavorite(ctx context.Context, jar *backend.CookieJar, userID, propertyID string) error

	Inquiries(ctx context.Context, jar *backend.CookieJar, userID string) ([]models.Inquiry, error)
	CreateInquiry(ctx context.Context, jar *backend.CookieJar, userID, propertyID, message string) (models.Inquiry, error)

	SavedSearches(ctx context.Context, jar *backend.CookieJar, userID string) ([]models.SavedSearch, error)
	CreateSavedSearch(ctx context.Context, jar *backend.CookieJar, userID, name string, criteria json.RawMessage) error
	DeleteSavedSearch(ctx context.Context, jar *backend.CookieJar, userID, searchID string) error

	Webinars(ctx context.Context, jar *backend.CookieJar) ([]models.Webinar, error)
	RegisterForWebinar(ctx context.Context, jar *backend.CookieJar, userID, webinarID string) error

	ConciergeTickets(ctx context.Context, jar *backend.CookieJar, userID string) ([]models.ConciergeTicket, error)
	CreateConciergeTicket(ctx context.Context, jar *backend.CookieJar, userID, subject, body string) error
	CloseConciergeTicket(ctx context.Context, jar *backend.CookieJar, userID, ticketID string) error

	Documents(ctx context.Context, jar *backend.CookieJar, userID string) ([]models.Document, error)
	UploadDocument(ctx context.Context, jar *backend.CookieJar, userID, fileName, contentType string, data []byte) (models.Document, error)
	DownloadDocument(ctx context.Context, jar *backend.CookieJar, userID, documentID string) ([]byte, string, error)
}

package store

import (
	"context"

	"github.com/domy-v-italii/portal/models"
)

// LocalSessionRepository persists the portal session cookies on the
// client device so the user stays signed in across client restarts.
type LocalSessionRepository interface {
	SaveCookies(ctx context.Context, cookies []models.StoredCookie) error
	LoadCookies(ctx context.Context) ([]models.StoredCookie, error)
	ClearCookies(ctx context.Context) error
}

// LocalRecentRepository records which listings the user opened. The
// history never leaves the device.
type LocalRecentRepository interface {
	RecordView(ctx context.Context, propertyID string) error
	RecentlyViewed(ctx context.Context, limit int) ([]models.RecentView, error)
}

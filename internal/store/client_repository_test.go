package store

import (
	"context"
	"testing"
	"time"

	"github.com/domy-v-italii/portal/internal/config"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/models"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()

	storages, err := NewClientStorages(&config.ClientConfig{LocalDBPath: ":memory:"}, logger.Nop())
	if err != nil {
		t.Fatalf("NewClientStorages: %v", err)
	}
	return storages
}

func TestSessionCookies_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	storages := newTestClientStorages(t)
	repo := storages.SessionRepository

	loaded, err := repo.LoadCookies(ctx)
	if err != nil {
		t.Fatalf("LoadCookies: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty cookie set, got %d", len(loaded))
	}

	cookies := []models.StoredCookie{
		{Name: "sb-access-token", Value: "jwt-token", Expires: time.Now().Add(time.Hour).UTC()},
		{Name: "sb-refresh-token", Value: "refresh-token"},
	}
	if err = repo.SaveCookies(ctx, cookies); err != nil {
		t.Fatalf("SaveCookies: %v", err)
	}

	loaded, err = repo.LoadCookies(ctx)
	if err != nil {
		t.Fatalf("LoadCookies: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 cookies, got %d", len(loaded))
	}

	// saving again replaces, never appends
	if err = repo.SaveCookies(ctx, cookies[:1]); err != nil {
		t.Fatalf("SaveCookies: %v", err)
	}
	loaded, _ = repo.LoadCookies(ctx)
	if len(loaded) != 1 {
		t.Fatalf("expected 1 cookie after replace, got %d", len(loaded))
	}
	if loaded[0].Name != "sb-access-token" || loaded[0].Value != "jwt-token" {
		t.Fatalf("unexpected cookie %+v", loaded[0])
	}

	if err = repo.ClearCookies(ctx); err != nil {
		t.Fatalf("ClearCookies: %v", err)
	}
	loaded, _ = repo.LoadCookies(ctx)
	if len(loaded) != 0 {
		t.Fatalf("expected no cookies after clear, got %d", len(loaded))
	}
}

func TestRecentViews_UpsertAndOrder(t *testing.T) {
	ctx := context.Background()
	storages := newTestClientStorages(t)
	repo := storages.RecentRepository

	for _, id := range []string{"prop-cal-001", "prop-pug-001", "prop-sic-001"} {
		if err := repo.RecordView(ctx, id); err != nil {
			t.Fatalf("RecordView(%s): %v", id, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	// revisiting moves the listing to the top
	if err := repo.RecordView(ctx, "prop-cal-001"); err != nil {
		t.Fatalf("RecordView: %v", err)
	}

	views, err := repo.RecentlyViewed(ctx, 2)
	if err != nil {
		t.Fatalf("RecentlyViewed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].PropertyID != "prop-cal-001" {
		t.Fatalf("expected revisited listing first, got %s", views[0].PropertyID)
	}

	// zero limit falls back to the default
	views, err = repo.RecentlyViewed(ctx, 0)
	if err != nil {
		t.Fatalf("RecentlyViewed: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}
}

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domy-v-italii/portal/internal/config"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) PortalAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.ClientConfig{PortalURL: srv.URL, Timeout: 5 * time.Second}
	portal, err := NewPortalAdapter(cfg, logger.Nop())
	require.NoError(t, err)

	return portal
}

func TestNewPortalAdapter_InvalidAddress(t *testing.T) {
	_, err := NewPortalAdapter(&config.ClientConfig{PortalURL: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestLogin_StoresCookiesAndAnnounces(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "marta@example.cz", req.Email)

		http.SetCookie(w, &http.Cookie{Name: "sb-access-token", Value: "jwt-token", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LoginResponse{
			Success: true,
			User:    &models.AuthUser{ID: "u-1", Email: req.Email},
		})
	})
	mux.HandleFunc("GET /api/auth/session", func(w http.ResponseWriter, r *http.Request) {
		// the cookie from login must ride along automatically
		cookie, err := r.Cookie("sb-access-token")
		require.NoError(t, err)
		assert.Equal(t, "jwt-token", cookie.Value)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.SessionResponse{
			User: &models.User{ID: "u-1", Email: "marta@example.cz"},
		})
	})

	portal := newTestAdapter(t, mux)

	var mu sync.Mutex
	var announced []*models.User
	defer portal.OnAuthChange(func(user *models.User) {
		mu.Lock()
		announced = append(announced, user)
		mu.Unlock()
	})()

	user, err := portal.Login(context.Background(), "marta@example.cz", "tajneheslo")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	mu.Lock()
	require.Len(t, announced, 1)
	assert.Equal(t, "u-1", announced[0].ID)
	mu.Unlock()

	sessionUser, err := portal.Session(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sessionUser)
	assert.Equal(t, "marta@example.cz", sessionUser.Email)
}

func TestLogin_SuccessWithoutUserBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "sb-access-token", Value: "jwt-token", Path: "/"})
		json.NewEncoder(w).Encode(models.LoginResponse{Success: true, User: nil})
	})

	portal := newTestAdapter(t, mux)

	// announcing nil here would read as a sign-out, so nothing fires
	announced := 0
	defer portal.OnAuthChange(func(*models.User) { announced++ })()

	user, err := portal.Login(context.Background(), "marta@example.cz", "tajneheslo")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Zero(t, announced)
}

func TestLogin_PortalRejection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid login credentials"})
	})

	portal := newTestAdapter(t, mux)

	_, err := portal.Login(context.Background(), "marta@example.cz", "spatne")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Invalid login credentials")
}

func TestSignup_WithoutSession_NoAnnouncement(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.SignupResponse{
			Success:    true,
			HasSession: false,
			User:       &models.AuthUser{ID: "u-2", Email: "petr@example.cz"},
		})
	})

	portal := newTestAdapter(t, mux)

	announced := 0
	defer portal.OnAuthChange(func(*models.User) { announced++ })()

	user, hasSession, err := portal.Signup(context.Background(), "Petr", "petr@example.cz", "tajneheslo")
	require.NoError(t, err)
	assert.False(t, hasSession)
	assert.Equal(t, "u-2", user.ID)
	assert.Zero(t, announced)
}

func TestLogout_AnnouncesSignOut(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	portal := newTestAdapter(t, mux)

	var announced []*models.User
	defer portal.OnAuthChange(func(user *models.User) {
		announced = append(announced, user)
	})()

	require.NoError(t, portal.Logout(context.Background()))
	require.Len(t, announced, 1)
	assert.Nil(t, announced[0])
}

func TestMagicLink_Disabled(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/magic-link", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Magic link sign-in is not available, use password login"})
	})

	portal := newTestAdapter(t, mux)

	err := portal.MagicLink(context.Background(), "marta@example.cz")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestSession_Anonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/session", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.SessionResponse{User: nil})
	})

	portal := newTestAdapter(t, mux)

	user, err := portal.Session(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUnsubscribeStopsAnnouncements(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	portal := newTestAdapter(t, mux)

	announced := 0
	unsubscribe := portal.OnAuthChange(func(*models.User) { announced++ })
	unsubscribe()
	unsubscribe()

	require.NoError(t, portal.Logout(context.Background()))
	assert.Zero(t, announced)
}

func TestCreateInquiry_ParsesResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/dashboard/inquiries", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "prop-cal-001", req["property_id"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Inquiry{
			ID:        "i-1",
			Reference: "INQ-H7K2M9",
			Status:    models.InquiryStatusOpen,
		})
	})

	portal := newTestAdapter(t, mux)

	inquiry, err := portal.CreateInquiry(context.Background(), "prop-cal-001", "Je dům stále na prodej?")
	require.NoError(t, err)
	assert.Equal(t, "INQ-H7K2M9", inquiry.Reference)
}

func TestDashboard_UnauthorizedMapsSentinel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/dashboard/favorites", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Authentication required"})
	})

	portal := newTestAdapter(t, mux)

	_, err := portal.Favorites(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestCookies_RoundTrip(t *testing.T) {
	portal := newTestAdapter(t, http.NewServeMux())

	assert.Empty(t, portal.Cookies())

	portal.RestoreCookies([]*http.Cookie{{Name: "sb-access-token", Value: "saved"}})

	cookies := portal.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sb-access-token", cookies[0].Name)
	assert.Equal(t, "saved", cookies[0].Value)
}

func TestDownloadDocument(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/dashboard/documents/d-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.7"))
	})

	portal := newTestAdapter(t, mux)

	data, contentType, err := portal.DownloadDocument(context.Background(), "d-1")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, []byte("%PDF-1.7"), data)
}

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/domy-v-italii/portal/internal/config"
	"github.com/domy-v-italii/portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(config.Backend{
		URL:     srv.URL,
		AnonKey: "test-anon-key",
		Timeout: 5 * time.Second,
	})
	return client, srv
}

// TestNewClient_Unconfigured verifies a client without URL or key
// reports itself unconfigured and every call fails fast.
func TestNewClient_Unconfigured(t *testing.T) {
	client := NewClient(config.Backend{})
	require.False(t, client.Configured())

	_, err := client.SignInWithPassword(context.Background(), nil, "a@b.cz", "pw")
	require.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.GetUser(context.Background(), nil)
	require.ErrorIs(t, err, ErrNotConfigured)

	err = client.From("profiles").Insert(context.Background(), models.Profile{})
	require.ErrorIs(t, err, ErrNotConfigured)
}

// TestSignInWithPassword_Success verifies the happy path: user decoded,
// session cookies collected into the jar.
func TestSignInWithPassword_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "test-anon-key", r.Header.Get("apikey"))

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "jana@example.cz", creds["email"])

		http.SetCookie(w, &http.Cookie{Name: "sb-access-token", Value: "jwt", Path: "/", HttpOnly: true})
		http.SetCookie(w, &http.Cookie{Name: "sb-refresh-token", Value: "ref", Path: "/", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{"id": "u-1", "email": "jana@example.cz"},
		})
	})

	jar := NewCookieJar(nil)
	user, err := client.SignInWithPassword(context.Background(), jar, "jana@example.cz", "tajneheslo")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "jana@example.cz", user.Email)

	outbound := jar.Outbound()
	require.Len(t, outbound, 2)
	assert.Equal(t, "sb-access-token", outbound[0].Name)
	assert.Equal(t, "jwt", outbound[0].Value)
}

// TestSignInWithPassword_Rejection verifies a backend refusal maps to
// an APIError with the backend's status and message, and that cookies
// set on the failed response are still collected.
func TestSignInWithPassword_Rejection(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "sb-access-token", Value: "", MaxAge: -1})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid login credentials"})
	})

	jar := NewCookieJar(nil)
	_, err := client.SignInWithPassword(context.Background(), jar, "jana@example.cz", "spatne")
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid login credentials", apiErr.Message)

	require.Len(t, jar.Outbound(), 1, "cookie clearing on a failed login must still be collected")
}

// TestSignUp_WithoutSession verifies the confirmation-required flow:
// a user comes back but no session.
func TestSignUp_WithoutSession(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/signup", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user":    map[string]any{"id": "u-2", "email": "petr@example.cz"},
			"session": nil,
		})
	})

	user, session, err := client.SignUp(context.Background(), NewCookieJar(nil), "Petr", "petr@example.cz", "heslo123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Nil(t, session)
}

// TestGetUser_Anonymous verifies a 401 resolves to (nil, nil): an
// anonymous visitor is not an error.
func TestGetUser_Anonymous(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	user, err := client.GetUser(context.Background(), NewCookieJar(nil))
	require.NoError(t, err)
	assert.Nil(t, user)
}

// TestGetUser_ForwardsJarCookies verifies the effective jar cookies
// ride the request.
func TestGetUser_ForwardsJarCookies(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("sb-access-token")
		require.NoError(t, err)
		require.Equal(t, "session-jwt", c.Value)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{"id": "u-3", "email": "eva@example.cz"},
		})
	})

	jar := NewCookieJar([]*http.Cookie{{Name: "sb-access-token", Value: "session-jwt"}})
	user, err := client.GetUser(context.Background(), jar)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u-3", user.ID)
}

// TestRowQuery_BuildsFilters verifies the query-string encoding of
// selects, eq filters, ordering, and limits.
func TestRowQuery_BuildsFilters(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/favorites", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "*", q.Get("select"))
		require.Equal(t, "eq.u-1", q.Get("user_id"))
		require.Equal(t, "created_at.desc", q.Get("order"))
		require.Equal(t, "50", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"f-1","user_id":"u-1","property_id":"p-1"}]`))
	})

	var favorites []models.Favorite
	err := client.From("favorites").
		Eq("user_id", "u-1").
		OrderBy("created_at", true).
		Limit(50).
		All(context.Background(), &favorites)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "p-1", favorites[0].PropertyID)
}

// TestRowQuery_SingleNotFound verifies an empty result maps to
// ErrRowNotFound.
func TestRowQuery_SingleNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	var profile models.Profile
	err := client.From("profiles").Eq("id", "missing").Single(context.Background(), &profile)
	require.ErrorIs(t, err, ErrRowNotFound)
}

// TestRowQuery_InsertIgnoreDuplicates verifies the Prefer header used
// for the create-if-missing profile fallback.
func TestRowQuery_InsertIgnoreDuplicates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "resolution=ignore-duplicates", r.Header.Get("Prefer"))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.From("profiles").InsertIgnoreDuplicates(context.Background(), models.Profile{ID: "u-1", Role: models.RoleMember})
	require.NoError(t, err)
}

// TestRowQuery_DeleteWithFilter verifies filters ride DELETE requests.
func TestRowQuery_DeleteWithFilter(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "eq.f-9", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.From("favorites").Eq("id", "f-9").Delete(context.Background())
	require.NoError(t, err)
}

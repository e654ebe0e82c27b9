package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/config"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/models"
)

func newBackendClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return backend.NewClient(config.Backend{
		URL:     srv.URL,
		AnonKey: "test-anon-key",
		Timeout: 5 * time.Second,
	})
}

func TestEnsureProfile_DuplicateSafeInsert(t *testing.T) {
	var gotPrefer string
	var gotBody map[string]any

	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rest/v1/profiles", r.URL.Path)
		gotPrefer = r.Header.Get("Prefer")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	svc := NewProfileService(client, logger.Nop())
	user := &models.User{
		ID:           "u-1",
		Email:        "marta@example.cz",
		UserMetadata: models.UserMetadata{Name: "Marta"},
	}

	err := svc.EnsureProfile(context.Background(), backend.NewCookieJar(nil), user)
	require.NoError(t, err)

	assert.Equal(t, "resolution=ignore-duplicates", gotPrefer)
	assert.Equal(t, "u-1", gotBody["id"])
	assert.Equal(t, "Marta", gotBody["name"])
	assert.Equal(t, models.RoleMember, gotBody["role"])
}

func TestEnsureProfile_NameFallsBackToEmail(t *testing.T) {
	var gotBody map[string]any

	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	svc := NewProfileService(client, logger.Nop())
	user := &models.User{ID: "u-2", Email: "petr@example.cz"}

	err := svc.EnsureProfile(context.Background(), backend.NewCookieJar(nil), user)
	require.NoError(t, err)
	assert.Equal(t, "petr", gotBody["name"])
}

func TestFetchProfile_Success(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/profiles", r.URL.Path)
		require.Equal(t, "eq.u-1", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"u-1","name":"Marta","role":"admin"}]`))
	})

	svc := NewProfileService(client, logger.Nop())

	profile, err := svc.FetchProfile(context.Background(), backend.NewCookieJar(nil), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Marta", profile.Name)
	assert.True(t, profile.IsAdmin())
}

func TestFetchProfile_NotFound(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	svc := NewProfileService(client, logger.Nop())

	_, err := svc.FetchProfile(context.Background(), backend.NewCookieJar(nil), "ghost")
	require.ErrorIs(t, err, backend.ErrRowNotFound)
}

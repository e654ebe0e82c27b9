package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/logger"
)

func TestFavorites_List(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/favorites", r.URL.Path)
		require.Equal(t, "eq.u-1", r.URL.Query().Get("user_id"))
		require.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"fav-1","user_id":"u-1","property_id":"prop-7"}]`))
	})

	svc := NewDashboardService(client, logger.Nop())

	favorites, err := svc.Favorites(context.Background(), backend.NewCookieJar(nil), "u-1")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "prop-7", favorites[0].PropertyID)
}

func TestAddFavorite_IgnoresDuplicates(t *testing.T) {
	var gotPrefer string

	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPrefer = r.Header.Get("Prefer")
		w.WriteHeader(http.StatusCreated)
	})

	svc := NewDashboardService(client, logger.Nop())

	err := svc.AddFavorite(context.Background(), backend.NewCookieJar(nil), "u-1", "prop-7")
	require.NoError(t, err)
	assert.Equal(t, "resolution=ignore-duplicates", gotPrefer)
}

func TestRemoveFavorite_FiltersDelete(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "eq.u-1", r.URL.Query().Get("user_id"))
		require.Equal(t, "eq.prop-7", r.URL.Query().Get("property_id"))
		w.WriteHeader(http.StatusNoContent)
	})

	svc := NewDashboardService(client, logger.Nop())

	err := svc.RemoveFavorite(context.Background(), backend.NewCookieJar(nil), "u-1", "prop-7")
	require.NoError(t, err)
}

func TestCreateInquiry_GeneratesReference(t *testing.T) {
	var gotBody map[string]any

	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	svc := NewDashboardService(client, logger.Nop())

	inquiry, err := svc.CreateInquiry(context.Background(), backend.NewCookieJar(nil), "u-1", "prop-7", "Je dům stále na prodej?")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(inquiry.Reference, "INQ-"), "reference %q", inquiry.Reference)
	assert.Len(t, inquiry.Reference, len("INQ-")+6)
	assert.Equal(t, inquiry.Reference, gotBody["reference"])
	assert.Equal(t, "open", gotBody["status"])
}

func TestCreateSavedSearch_DefaultsCriteria(t *testing.T) {
	var gotBody map[string]json.RawMessage

	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	svc := NewDashboardService(client, logger.Nop())

	err := svc.CreateSavedSearch(context.Background(), backend.NewCookieJar(nil), "u-1", "Puglia", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(gotBody["criteria"]))
}

func TestCloseConciergeTicket_ScopedPatch(t *testing.T) {
	var gotBody map[string]any

	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "eq.u-1", r.URL.Query().Get("user_id"))
		require.Equal(t, "eq.t-1", r.URL.Query().Get("id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	})

	svc := NewDashboardService(client, logger.Nop())

	err := svc.CloseConciergeTicket(context.Background(), backend.NewCookieJar(nil), "u-1", "t-1")
	require.NoError(t, err)
	assert.Equal(t, "closed", gotBody["status"])
}

func TestWebinars_OrderedByStart(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "starts_at.asc", r.URL.Query().Get("order"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"w-1","title":"Koupě nemovitosti v Itálii krok za krokem"}]`))
	})

	svc := NewDashboardService(client, logger.Nop())

	webinars, err := svc.Webinars(context.Background(), backend.NewCookieJar(nil))
	require.NoError(t, err)
	require.Len(t, webinars, 1)
}

func TestUploadDocument_BlobThenMetadata(t *testing.T) {
	var calls []string
	var gotBody map[string]any

	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if strings.HasPrefix(r.URL.Path, "/rest/v1/documents") {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		}
		w.WriteHeader(http.StatusOK)
	})

	svc := NewDashboardService(client, logger.Nop())

	data := []byte("pdf bytes")
	document, err := svc.UploadDocument(context.Background(), backend.NewCookieJar(nil), "u-1", "smlouva.pdf", "application/pdf", data)
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.True(t, strings.HasPrefix(calls[0], "POST /storage/v1/object/"), "first call %q", calls[0])
	assert.Equal(t, "POST /rest/v1/documents", calls[1])

	assert.Equal(t, "smlouva.pdf", gotBody["file_name"])
	assert.EqualValues(t, len(data), gotBody["size_bytes"])
	assert.Equal(t, document.StorageKey, gotBody["storage_key"])
}

func TestDownloadDocument_OwnershipEnforced(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"d-1","user_id":"someone-else","storage_key":"documents/x"}]`))
	})

	svc := NewDashboardService(client, logger.Nop())

	_, _, err := svc.DownloadDocument(context.Background(), backend.NewCookieJar(nil), "u-1", "d-1")
	require.ErrorIs(t, err, ErrNotOwned)
}

func TestDownloadDocument_Success(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/rest/v1/documents") {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"d-1","user_id":"u-1","content_type":"application/pdf","storage_key":"documents/u-1/x"}]`))
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("pdf bytes"))
	})

	svc := NewDashboardService(client, logger.Nop())

	data, contentType, err := svc.DownloadDocument(context.Background(), backend.NewCookieJar(nil), "u-1", "d-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), data)
	assert.Equal(t, "application/pdf", contentType)
}

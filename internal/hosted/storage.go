package hosted

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/utils"
)

// maxObjectSize caps document uploads at 20 MiB.
const maxObjectSize = 20 << 20

// uploadObject serves POST /storage/v1/object/{key}. The body is the
// raw blob; Content-Type is stored alongside it.
func (h *Handler) uploadObject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "*")
	if key == "" {
		utils.WriteError(w, "object key is required", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxObjectSize+1))
	if err != nil {
		log.Err(err).Msg("error reading upload body")
		utils.WriteError(w, "error reading upload", http.StatusBadRequest)
		return
	}
	if len(data) > maxObjectSize {
		utils.WriteError(w, "object too large", http.StatusRequestEntityTooLarge)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err = h.blob.Put(ctx, key, contentType, data); err != nil {
		log.Err(err).Str("key", key).Msg("error storing object")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// downloadObject serves GET /storage/v1/object/{key}.
func (h *Handler) downloadObject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "*")
	if key == "" {
		utils.WriteError(w, "object key is required", http.StatusBadRequest)
		return
	}

	data, contentType, err := h.blob.Get(ctx, key)
	if err != nil {
		log.Err(err).Str("key", key).Msg("error fetching object")
		utils.WriteError(w, "object not found", http.StatusNotFound)
		return
	}

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/service"
	"github.com/domy-v-italii/portal/internal/utils"
)

// maxDocumentSize caps a single document upload at 20 MiB.
const maxDocumentSize = 20 << 20

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	documents, err := h.services.DashboardService.Documents(ctx, jar, user.ID)
	if err != nil {
		log.Err(err).Msg("documents listing failed")
		utils.WriteError(w, "Unable to load documents", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, documents, http.StatusOK)
}

// uploadDocument accepts the raw file as the request body. The file
// name travels in the X-File-Name header, the type in Content-Type.
func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	fileName := r.Header.Get("X-File-Name")
	if fileName == "" {
		utils.WriteError(w, "X-File-Name header is required", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize+1))
	if err != nil {
		utils.WriteError(w, "Unable to read upload", http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		utils.WriteError(w, "Empty upload", http.StatusBadRequest)
		return
	}
	if len(data) > maxDocumentSize {
		utils.WriteError(w, "Document too large", http.StatusRequestEntityTooLarge)
		return
	}

	document, err := h.services.DashboardService.UploadDocument(ctx, jar, user.ID, fileName, contentType, data)
	if err != nil {
		log.Err(err).Msg("document upload failed")
		utils.WriteError(w, "Unable to store document", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, document, http.StatusCreated)
}

func (h *Handler) downloadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	documentID := chi.URLParam(r, "documentID")

	data, contentType, err := h.services.DashboardService.DownloadDocument(ctx, jar, user.ID, documentID)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrRowNotFound):
			utils.WriteError(w, "Document not found", http.StatusNotFound)
		case errors.Is(err, service.ErrNotOwned):
			// same response as not-found so existence is not leaked
			utils.WriteError(w, "Document not found", http.StatusNotFound)
		default:
			log.Err(err).Msg("document download failed")
			utils.WriteError(w, "Unable to fetch document", http.StatusBadGateway)
		}
		return
	}

	jar.ApplyTo(w)
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

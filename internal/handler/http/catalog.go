package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/domy-v-italii/portal/internal/catalog"
	"github.com/domy-v-italii/portal/internal/utils"
	"github.com/domy-v-italii/portal/models"
)

// regionView is a region with its translation keys resolved for the
// request language.
type regionView struct {
	models.Region
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// requestLanguage picks the UI language: ?lang= wins, unsupported or
// absent values fall back to Czech.
func (h *Handler) requestLanguage(r *http.Request) string {
	lang := r.URL.Query().Get("lang")
	if lang != "" && h.catalog.HasLanguage(lang) {
		return lang
	}
	return catalog.DefaultLanguage
}

// listRegions serves the public region overview.
func (h *Handler) listRegions(w http.ResponseWriter, r *http.Request) {
	lang := h.requestLanguage(r)

	regions := h.catalog.Regions()
	views := make([]regionView, 0, len(regions))
	for _, region := range regions {
		views = append(views, regionView{
			Region:  region,
			Name:    h.catalog.Translate(lang, region.NameKey),
			Summary: h.catalog.Translate(lang, region.SummaryKey),
		})
	}

	utils.WriteJSON(w, views, http.StatusOK)
}

// listProperties serves the public listings, optionally filtered by
// ?region=slug.
func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	regionSlug := r.URL.Query().Get("region")

	if regionSlug != "" {
		if _, ok := h.catalog.Region(regionSlug); !ok {
			utils.WriteError(w, "Unknown region", http.StatusNotFound)
			return
		}
	}

	properties := h.catalog.Properties(regionSlug)
	if properties == nil {
		properties = []models.Property{}
	}

	utils.WriteJSON(w, properties, http.StatusOK)
}

// getProperty serves one listing by id.
func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	property, ok := h.catalog.Property(propertyID)
	if !ok {
		utils.WriteError(w, "Unknown property", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, property, http.StatusOK)
}

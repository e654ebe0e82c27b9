package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/utils"
)

// ─────────────────────────────────────────────
// Favorites
// ─────────────────────────────────────────────

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	favorites, err := h.services.DashboardService.Favorites(ctx, jar, user.ID)
	if err != nil {
		log.Err(err).Msg("favorites listing failed")
		utils.WriteError(w, "Unable to load favorites", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, favorites, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	var req struct {
		PropertyID string `json:"property_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PropertyID == "" {
		utils.WriteError(w, "property_id is required", http.StatusBadRequest)
		return
	}

	if _, ok := h.catalog.Property(req.PropertyID); !ok {
		utils.WriteError(w, "Unknown property", http.StatusNotFound)
		return
	}

	if err := h.services.DashboardService.AddFavorite(ctx, jar, user.ID, req.PropertyID); err != nil {
		log.Err(err).Msg("favorite creation failed")
		utils.WriteError(w, "Unable to save favorite", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	propertyID := chi.URLParam(r, "propertyID")

	if err := h.services.DashboardService.RemoveFavorite(ctx, jar, user.ID, propertyID); err != nil {
		log.Err(err).Msg("favorite removal failed")
		utils.WriteError(w, "Unable to remove favorite", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────
// Inquiries
// ─────────────────────────────────────────────

func (h *Handler) listInquiries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	inquiries, err := h.services.DashboardService.Inquiries(ctx, jar, user.ID)
	if err != nil {
		log.Err(err).Msg("inquiries listing failed")
		utils.WriteError(w, "Unable to load inquiries", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, inquiries, http.StatusOK)
}

func (h *Handler) createInquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	var req struct {
		PropertyID string `json:"property_id"`
		Message    string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PropertyID == "" {
		utils.WriteError(w, "property_id is required", http.StatusBadRequest)
		return
	}

	if _, ok := h.catalog.Property(req.PropertyID); !ok {
		utils.WriteError(w, "Unknown property", http.StatusNotFound)
		return
	}

	inquiry, err := h.services.DashboardService.CreateInquiry(ctx, jar, user.ID, req.PropertyID, req.Message)
	if err != nil {
		log.Err(err).Msg("inquiry creation failed")
		utils.WriteError(w, "Unable to file inquiry", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, inquiry, http.StatusCreated)
}

// ─────────────────────────────────────────────
// Saved searches
// ─────────────────────────────────────────────

func (h *Handler) listSavedSearches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	searches, err := h.services.DashboardService.SavedSearches(ctx, jar, user.ID)
	if err != nil {
		log.Err(err).Msg("saved searches listing failed")
		utils.WriteError(w, "Unable to load saved searches", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, searches, http.StatusOK)
}

func (h *Handler) createSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	var req struct {
		Name     string          `json:"name"`
		Criteria json.RawMessage `json:"criteria"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		utils.WriteError(w, "name is required", http.StatusBadRequest)
		return
	}

	if err := h.services.DashboardService.CreateSavedSearch(ctx, jar, user.ID, req.Name, req.Criteria); err != nil {
		log.Err(err).Msg("saved search creation failed")
		utils.WriteError(w, "Unable to save search", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusCreated)
}

func (h *Handler) deleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	searchID := chi.URLParam(r, "searchID")

	if err := h.services.DashboardService.DeleteSavedSearch(ctx, jar, user.ID, searchID); err != nil {
		log.Err(err).Msg("saved search removal failed")
		utils.WriteError(w, "Unable to delete saved search", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────
// Club: webinars and concierge
// ─────────────────────────────────────────────

func (h *Handler) listWebinars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	jar := backend.JarFromRequest(r)

	webinars, err := h.services.DashboardService.Webinars(ctx, jar)
	if err != nil {
		log.Err(err).Msg("webinars listing failed")
		utils.WriteError(w, "Unable to load webinars", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, webinars, http.StatusOK)
}

func (h *Handler) registerForWebinar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	webinarID := chi.URLParam(r, "webinarID")

	if err := h.services.DashboardService.RegisterForWebinar(ctx, jar, user.ID, webinarID); err != nil {
		log.Err(err).Msg("webinar registration failed")
		utils.WriteError(w, "Unable to register for webinar", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

func (h *Handler) listConciergeTickets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	tickets, err := h.services.DashboardService.ConciergeTickets(ctx, jar, user.ID)
	if err != nil {
		log.Err(err).Msg("concierge tickets listing failed")
		utils.WriteError(w, "Unable to load concierge tickets", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, tickets, http.StatusOK)
}

func (h *Handler) createConciergeTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	var req struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Subject == "" {
		utils.WriteError(w, "subject is required", http.StatusBadRequest)
		return
	}

	if err := h.services.DashboardService.CreateConciergeTicket(ctx, jar, user.ID, req.Subject, req.Body); err != nil {
		log.Err(err).Msg("concierge ticket creation failed")
		utils.WriteError(w, "Unable to create concierge ticket", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusCreated)
}

func (h *Handler) closeConciergeTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	ticketID := chi.URLParam(r, "ticketID")

	if err := h.services.DashboardService.CloseConciergeTicket(ctx, jar, user.ID, ticketID); err != nil {
		log.Err(err).Msg("concierge ticket close failed")
		utils.WriteError(w, "Unable to close concierge ticket", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

package http

import (
	"errors"
	"net/http"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/utils"
)

// getProfile returns the signed-in user's profile row.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	profile, err := h.services.ProfileService.FetchProfile(ctx, jar, user.ID)
	if err != nil {
		if errors.Is(err, backend.ErrRowNotFound) {
			utils.WriteError(w, "Profile not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("profile fetch failed")
		utils.WriteError(w, "Unable to load profile", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, profile, http.StatusOK)
}

// ensureProfile creates the profile row if missing. The endpoint is
// idempotent; the auth proxies also schedule the same insert as a
// background job after login and signup.
func (h *Handler) ensureProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := utils.UserFromContext(ctx)
	jar := backend.JarFromRequest(r)

	if err := h.services.ProfileService.EnsureProfile(ctx, jar, user); err != nil {
		log.Err(err).Msg("profile ensure failed")
		utils.WriteError(w, "Unable to create profile", http.StatusBadGateway)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

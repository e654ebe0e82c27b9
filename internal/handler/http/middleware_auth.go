package http

import (
	"net/http"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/utils"
)

// withUser resolves the request's session cookies to a user through
// the backend and rejects anonymous callers. The signed-in area sits
// behind this middleware; anonymous handling for public pages happens
// client-side through the access gate.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		jar := backend.JarFromRequest(r)

		user, err := h.services.AuthService.Session(ctx, jar)
		if err != nil {
			log.Err(err).Msg("session check failed")
			jar.ApplyTo(w)
			utils.WriteError(w, "Unable to verify session", http.StatusBadGateway)
			return
		}
		if user == nil {
			jar.ApplyTo(w)
			utils.WriteError(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithUser(ctx, user)))
	})
}

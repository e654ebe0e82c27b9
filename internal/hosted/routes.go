package hosted

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/domy-v-italii/portal/internal/app"
	"github.com/domy-v-italii/portal/internal/utils"
)

// Init builds the dev backend's router: the auth endpoints, the row
// API and object storage, all behind an apikey check.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(h.requireAPIKey)

	router.Route("/auth/v1", func(r chi.Router) {
		r.Post("/token", h.token)
		r.Post("/signup", h.signup)
		r.Post("/logout", h.logout)
		r.Get("/user", h.user)
	})

	router.Route("/rest/v1", func(r chi.Router) {
		r.Get("/{table}", h.selectRows)
		r.Post("/{table}", h.insertRow)
		r.Patch("/{table}", h.updateRows)
		r.Delete("/{table}", h.deleteRows)
	})

	router.Route("/storage/v1/object", func(r chi.Router) {
		r.Post("/*", h.uploadObject)
		r.Get("/*", h.downloadObject)
	})

	return router
}

// requireAPIKey mimics the hosted service's apikey gate. The dev
// backend accepts any non-empty key.
func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") == "" {
			utils.WriteError(w, app.MsgNoAPIKey, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

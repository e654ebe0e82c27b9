package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// public routes
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/session", h.session)
		r.Post("/api/auth/magic-link", h.magicLink)

		r.Get("/api/catalog/regions", h.listRegions)
		r.Get("/api/catalog/properties", h.listProperties)
		r.Get("/api/catalog/properties/{propertyID}", h.getProperty)

		r.Get("/api/version", h.getServerVersion)
	})

	// signed-in area
	router.Group(func(r chi.Router) {
		r.Use(h.withUser)

		r.Get("/api/profile", h.getProfile)
		r.Post("/api/profile/ensure", h.ensureProfile)

		r.Get("/api/dashboard/favorites", h.listFavorites)
		r.Post("/api/dashboard/favorites", h.addFavorite)
		r.Delete("/api/dashboard/favorites/{propertyID}", h.removeFavorite)

		r.Get("/api/dashboard/inquiries", h.listInquiries)
		r.Post("/api/dashboard/inquiries", h.createInquiry)

		r.Get("/api/dashboard/searches", h.listSavedSearches)
		r.Post("/api/dashboard/searches", h.createSavedSearch)
		r.Delete("/api/dashboard/searches/{searchID}", h.deleteSavedSearch)

		r.Get("/api/dashboard/documents", h.listDocuments)
		r.Post("/api/dashboard/documents", h.uploadDocument)
		r.Get("/api/dashboard/documents/{documentID}", h.downloadDocument)

		r.Get("/api/club/webinars", h.listWebinars)
		r.Post("/api/club/webinars/{webinarID}/register", h.registerForWebinar)

		r.Get("/api/club/concierge", h.listConciergeTickets)
		r.Post("/api/club/concierge", h.createConciergeTicket)
		r.Post("/api/club/concierge/{ticketID}/close", h.closeConciergeTicket)
	})

	return router
}

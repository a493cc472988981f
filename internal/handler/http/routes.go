package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// everything below requires a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Route("/api/vault", func(r chi.Router) {
			r.Get("/salt", h.getVaultSalt)
			r.Put("/salt", h.putVaultSalt)
		})

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Get("/recent", h.listRecentNotes)
			r.Post("/batch", h.getNotesByIDs)
			r.Put("/{noteID}", h.upsertNote)
			r.Delete("/{noteID}", h.deleteNote)
		})

		r.Route("/api/profiles", func(r chi.Router) {
			r.Get("/me", h.getProfile)
			r.Put("/me", h.putProfile)
			r.Post("/lookup", h.lookupProfile)
		})

		r.Route("/api/groups", func(r chi.Router) {
			r.Post("/", h.createGroup)
			r.Post("/{groupID}/members", h.addGroupMember)
			r.Delete("/{groupID}/members/{userID}", h.removeGroupMember)
			r.Get("/{groupID}/member-keys", h.listGroupMemberKeys)
			r.Get("/{groupID}/shares", h.listGroupShares)
			r.Post("/{groupID}/rotate", h.rotateGroupKeys)
		})

		r.Route("/api/group-keys", func(r chi.Router) {
			r.Get("/", h.listGroupKeys)
			r.Post("/", h.upsertGroupKeys)
		})

		r.Route("/api/shares", func(r chi.Router) {
			r.Get("/", h.listShares)
			r.Put("/", h.upsertShare)
			r.Delete("/", h.deleteShare)
		})
	})

	return router
}

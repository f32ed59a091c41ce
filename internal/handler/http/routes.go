package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user", h.getAllUsers)
		r.Get("/api/user/{id}", h.getUser)
		r.Put("/api/user/{id}", h.updateUser)
		r.Delete("/api/user/{id}", h.deleteUser)

		// {id} is the owning user on the collection routes and the contact
		// itself on the object routes.
		r.Get("/api/contacts/{id}/all", h.listContacts)
		r.Post("/api/contacts/{id}", h.createContact)
		r.Get("/api/contacts/{id}", h.getContact)
		r.Put("/api/contacts/{id}", h.updateContact)
		r.Delete("/api/contacts/{id}", h.deleteContact)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

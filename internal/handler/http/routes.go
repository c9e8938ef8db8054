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
		r.Get("/health", h.health)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes behind a session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/logout", h.logout)
		r.Post("/api/paste", h.paste)
		r.Get("/api/clipboard", h.getCurrent)
		r.Get("/api/clipboard/history", h.getHistory)
		r.Get("/api/poll", h.poll)
		// legacy alias of /api/clipboard kept for old clients
		r.Get("/api/data", h.getCurrent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"roster/middleware"
)

// Routes builds the full router: public pages, then the session-guarded
// group.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/", h.Index)
	r.Get("/login", h.Login)
	r.Post("/login", h.Login)
	r.Get("/signup", h.Signup)
	r.Post("/signup", h.Signup)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.sessions, h.users))
		r.Get("/dashboard", h.Dashboard)
		r.Post("/dashboard", h.Dashboard)
		r.Get("/admin", h.Admin)
		r.Get("/logout", h.Logout)
	})

	return r
}

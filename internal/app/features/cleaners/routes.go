package cleaners

import (
	"github.com/smartwastehq/smartwaste/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /api/cleaners.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Group(func(rr chi.Router) {
		rr.Use(auth.RequireIdentity)
		rr.Get("/", h.ServeList)
	})
	return r
}

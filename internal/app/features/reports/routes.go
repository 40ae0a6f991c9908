package reports

import (
	"github.com/smartwastehq/smartwaste/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /api/reports. Listing tolerates
// anonymous callers (they get the default user scoping); every mutation
// requires a resolved identity.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)

	r.Group(func(rr chi.Router) {
		rr.Use(auth.RequireIdentity)
		rr.Post("/", h.ServeCreate)
		rr.Put("/{reportID}", h.ServeUpdate)
		rr.Delete("/{reportID}", h.ServeDelete)
		rr.Put("/{reportID}/assign", h.ServeAssign)
	})

	return r
}

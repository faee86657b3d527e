// internal/app/features/workorders/routes.go
package workorders

import (
	"github.com/dalemusser/fieldhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the work-order pages; bootstrap mounts them at "/work-orders".
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Post("/", h.HandleCreate)
		pr.Get("/new", h.ServeNew)
		pr.Get("/{id}", h.ServeDetail)
	})
	return r
}

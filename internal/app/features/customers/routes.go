// internal/app/features/customers/routes.go
package customers

import (
	"github.com/dalemusser/fieldhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the customer pages; bootstrap mounts them at "/customers".
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Post("/", h.HandleCreate)
		pr.Get("/new", h.ServeNew)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)
		pr.Get("/{id}/history", h.ServeHistory)
		pr.Post("/{id}/work-orders", h.HandleCreateWorkOrder)
	})
	return r
}

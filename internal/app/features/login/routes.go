// internal/app/features/login/routes.go
package login

import (
	"net/http"

	"github.com/dalemusser/fieldhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.With(skipIfSignedIn).Get("/", h.ServeLogin)
	r.Post("/", h.HandleLoginPost)
	return r
}

// skipIfSignedIn sends a signed-in user straight to the return target.
func skipIfSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.CurrentUser(r); ok {
			http.Redirect(w, r, urlutil.SafeReturn(query.Get(r, "return"), "", "/"), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// internal/app/features/errors/templates.go
package errors

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

// pages holds error_page, shared by the not-found, bad-request,
// server-error and method-not-allowed responses.
//
//go:embed templates/*.gohtml
var pages embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "errors",
		FS:       pages,
		Patterns: []string{"templates/*.gohtml"},
	})
}

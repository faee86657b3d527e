// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g., "/customers").
	// If empty, any safe URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths are rejected to avoid redirect loops back to form pages.
	ExcludedSubpaths []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string

	// PreserveQueryParam is copied from the request onto the fallback, e.g. "tab".
	PreserveQueryParam string
}

// SafeBackURL extracts and validates a "return" URL from the query or form.
// Anything that is not a local path, misses the prefix, or hits an excluded
// subpath yields the fallback.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}

	if ret != "" && allowed(ret, opts) {
		return ret
	}

	fallback := opts.Fallback
	if opts.PreserveQueryParam != "" {
		param := query.Get(r, opts.PreserveQueryParam)
		if param == "" {
			param = strings.TrimSpace(r.FormValue(opts.PreserveQueryParam))
		}
		if param != "" {
			sep := "?"
			if strings.Contains(fallback, "?") {
				sep = "&"
			}
			fallback += sep + opts.PreserveQueryParam + "=" + url.QueryEscape(param)
		}
	}
	return fallback
}

func allowed(ret string, opts BackURLOptions) bool {
	if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
		return false
	}
	for _, excluded := range opts.ExcludedSubpaths {
		if strings.Contains(ret, excluded) {
			return false
		}
	}
	return true
}

var (
	// WorkOrdersBackURL returns options for work-order pages.
	WorkOrdersBackURL = BackURLOptions{
		AllowedPrefix:      "/work-orders",
		ExcludedSubpaths:   []string{"/new"},
		Fallback:           "/work-orders",
		PreserveQueryParam: "tab",
	}

	// CustomersBackURL returns options for customer pages.
	CustomersBackURL = BackURLOptions{
		AllowedPrefix:    "/customers",
		ExcludedSubpaths: []string{"/edit", "/new"},
		Fallback:         "/customers",
	}
)

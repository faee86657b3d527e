// Package htmlsanitize strips markup from free-text form input.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripTags removes every tag from s and trims surrounding whitespace.
// Entities escaped by the policy are decoded again so the result is plain text;
// templates escape it on output.
func StripTags(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// IsPlainText reports whether s contains nothing the strict policy would remove.
func IsPlainText(s string) bool {
	if !strings.ContainsAny(s, "<>") {
		return true
	}
	return html.UnescapeString(strict.Sanitize(s)) == s
}

// internal/app/system/sanitize/sanitize.go
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips all HTML. Every user-supplied string persisted to the
// remote store is plain text (names, subjects, message content), so
// tags never survive.
var strict = bluemonday.StrictPolicy()

// Text strips markup from user input and trims surrounding whitespace.
// Entities are unescaped afterwards so "Tom & Jerry" round-trips as
// typed rather than as "Tom &amp; Jerry".
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// TextSlice applies Text to every element, dropping entries that clean
// to empty.
func TextSlice(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := Text(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

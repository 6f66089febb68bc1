package markup

import "strings"

// escaper applies the replacements left to right in a single pass, so output
// of one rule is never fed to another.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces &, <, >, " and ' with their HTML entities.
// It is not idempotent: "&amp;" becomes "&amp;amp;".
func Escape(s string) string {
	return escaper.Replace(s)
}

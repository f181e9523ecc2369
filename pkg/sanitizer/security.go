package sanitizer

import (
	"strings"
)

// MaxURLPathLength is the number of bytes of a raw path URLPath looks at.
const MaxURLPathLength = 1000

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#039;",
	"<", "&lt;",
	">", "&gt;",
)

// URLPath filters a raw request path down to lowercase ASCII letters, digits,
// "/", "-" and "_", and strips trailing slashes. Input beyond
// MaxURLPathLength bytes is ignored.
//
//	sanitizer.URLPath("Recipes/Soup-2024/") // "recipes/soup-2024"
func URLPath(raw string) string {
	if raw == "" {
		return ""
	}

	return Apply(raw,
		func(s string) string { return truncateBytes(s, MaxURLPathLength) },
		strings.ToLower,
		func(s string) string { return unsafePathRegex.ReplaceAllString(s, "") },
		func(s string) string { return strings.TrimRight(s, "/") },
	)
}

// Escape converts &, <, >, " and ' to HTML entities.
// Empty input yields an empty string.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return htmlReplacer.Replace(s)
}

// EscapeHTML is Escape for any value, formatted with fmt's %v verb.
func EscapeHTML(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return Escape(val)
	default:
		return Escape(toString(val))
	}
}

func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

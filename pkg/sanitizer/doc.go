// Package sanitizer provides helpers for cleaning, escaping and formatting
// user-supplied text in a web application.
//
// The functions are grouped conceptually into several areas:
//
//   - Paths – URLPath reduces a raw request path to the lowercase
//     [a-z0-9/_-] alphabet used by the router, with trailing slashes removed.
//
//   - Escaping – Escape and EscapeHTML make text safe for HTML output,
//     escaping both quote kinds.
//
//   - Text – line splitting, word-boundary shortening, whitespace
//     normalisation, language-aware title casing and numeric checks.
//
//   - Dumps – Dump renders any value as a readable YAML block for debug pages.
//
// Functions compose through Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.SingleLine,
//	)
//
//	title := clean("  Borscht\r\nwith  beans ") // "Borscht with beans"
//
// # Error handling
//
// None of the helpers returns an error – they fall back to a safe result
// (usually an empty string) when the input cannot be processed.
//
// The package holds no state, so every helper is safe for concurrent use.
package sanitizer

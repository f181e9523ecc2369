package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Path filtering
	unsafePathRegex = regexp.MustCompile(`[^a-z0-9/\-_]`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Non-negative decimal numbers
	numberRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
)

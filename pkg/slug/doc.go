// Package slug turns arbitrary text into URL-safe identifiers.
//
// Input is first transliterated to Latin: Russian and Ukrainian Cyrillic goes
// through a fixed table, Latin letters with diacritics are folded to their base
// letters (NFD plus mark removal) and a handful of ligatures are expanded.
// Everything outside [A-Za-z0-9] then collapses into a single separator.
//
//	slug.Make("Борщ украинский")              // "borshch-ukrainskiy"
//	slug.Make("Crème Brûlée", slug.MaxLength(5)) // "creme"
//	slug.Make("Fish & Chips",
//		slug.CustomReplace(map[string]string{"&": "and"}),
//	) // "fish-and-chips"
//
// Transliterate is exported for callers that only need the Latin form and want
// to keep case and punctuation.
//
// Options:
//
//   - MaxLength: maximum slug length in runes
//   - Separator: separator between words (default "-")
//   - Lowercase: lowercase the result (default true)
//   - StripChars: characters removed before processing
//   - CustomReplace: replacements applied before transliteration
//   - WithSuffix: random alphanumeric suffix to reduce collisions
//
// All functions are safe for concurrent use.
package slug

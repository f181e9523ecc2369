// Package random generates random strings from a character set using
// crypto/rand.
//
// Characters are drawn with rejection sampling, so every character of the set
// is equally likely regardless of the set size.
//
//	code := random.Digits(6)          // "048213"
//	name := random.Alphanumeric(12)   // "f8Kq2ZxA0pLm"
//	id := random.String(8, "abc123")  // "b1ca3a2c"
//
// All functions are safe for concurrent use.
package random

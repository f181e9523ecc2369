package random

import (
	"crypto/rand"
	"math/big"
)

// Character sets.
const (
	LowerChars        = "abcdefghijklmnopqrstuvwxyz"
	UpperChars        = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars        = "0123456789"
	HexChars          = "0123456789abcdef"
	AlphanumericChars = LowerChars + UpperChars + DigitChars
)

// String returns n characters drawn uniformly from charset.
// It returns an empty string when n <= 0 or charset is empty.
func String(n int, charset string) string {
	set := []rune(charset)
	if n <= 0 || len(set) == 0 {
		return ""
	}

	out := make([]rune, n)
	if len(set) > 256 {
		limit := big.NewInt(int64(len(set)))
		for i := range out {
			idx, err := rand.Int(rand.Reader, limit)
			if err != nil {
				panic(err)
			}
			out[i] = set[idx.Int64()]
		}
		return string(out)
	}

	// Bytes at or above ceiling would bias the modulo towards the first characters.
	ceiling := 256 - 256%len(set)
	buf := make([]byte, n*2)
	filled := 0
	for filled < n {
		// crypto/rand.Read never returns an error since Go 1.24.
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= ceiling {
				continue
			}
			out[filled] = set[int(b)%len(set)]
			filled++
			if filled == n {
				break
			}
		}
	}

	return string(out)
}

// Alphanumeric returns n characters from [a-zA-Z0-9].
func Alphanumeric(n int) string {
	return String(n, AlphanumericChars)
}

// Lower returns n characters from [a-z0-9].
func Lower(n int) string {
	return String(n, LowerChars+DigitChars)
}

// Digits returns n decimal digits. Leading zeros are kept.
func Digits(n int) string {
	return String(n, DigitChars)
}

// Hex returns n lowercase hexadecimal characters.
func Hex(n int) string {
	return String(n, HexChars)
}

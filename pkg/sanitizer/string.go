package sanitizer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// RemoveExtraWhitespace collapses whitespace runs into a single space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SingleLine joins a multi-line string into one line.
func SingleLine(s string) string {
	return RemoveExtraWhitespace(s)
}

// SplitLines splits text into lines, accepting \n, \r\n and \r line endings.
// Empty input yields an empty slice.
func SplitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// IsNum reports whether s is a non-negative decimal number ("0", "42", "3.5").
// Signs, spaces and exponents are rejected. With positive set the value must
// also be greater than zero.
func IsNum(s string, positive bool) bool {
	if !numberRegex.MatchString(s) {
		return false
	}
	if !positive {
		return true
	}
	return strings.Trim(s, "0.") != ""
}

// Shorten cuts s to at most maxLen runes, preferring the last word boundary,
// and appends tail when anything was removed. The tail is not counted in maxLen.
func Shorten(s string, maxLen int, tail string) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	cut := runes[:maxLen]
	// Prefer breaking on whitespace when the next rune continues a word.
	if !unicode.IsSpace(runes[maxLen]) {
		if i := lastSpace(cut); i > 0 {
			cut = cut[:i]
		}
	}

	short := strings.TrimRightFunc(string(cut), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})

	return short + tail
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}

// Title upper-cases the first letter of every word using the casing rules of lang.
func Title(s string, lang language.Tag) string {
	return cases.Title(lang).String(s)
}

func toString(v any) string {
	switch val := v.(type) {
	case fmt.Stringer:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

package slug

import (
	"strings"
	"unicode"

	"github.com/menuworks/enginekit/pkg/random"
)

// Option configures the slug generation behavior.
type Option func(*config)

// config holds the configuration for slug generation.
type config struct {
	maxLength     int
	separator     string
	lowercase     bool
	stripChars    string
	customReplace map[string]string
	suffixLength  int
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength sets the maximum length of the generated slug in runes.
// Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the separator placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls whether the slug is lowercased. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// StripChars removes the given characters before slugification.
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace applies string replacements before transliteration,
// for example {"&": "and", "@": "at"}.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length,
// e.g. "borshch-x7g3k2".
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// Make creates a URL-safe slug. The input is transliterated to Latin, every
// run of characters other than ASCII letters and digits becomes one separator,
// and the result is optionally lowercased and truncated.
//
//	slug.Make("Борщ с пампушками") // "borshch-s-pampushkami"
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for old, repl := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, repl)
	}

	if cfg.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(cfg.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}

	s = Transliterate(s)

	var b strings.Builder
	b.Grow(len(s))

	sepLen := len([]rune(cfg.separator))
	lastWasSep := true // no leading separator
	count := 0

	for _, r := range s {
		if cfg.maxLength > 0 && count >= cfg.maxLength {
			break
		}

		if cfg.lowercase {
			r = unicode.ToLower(r)
		}

		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			count++
			continue
		}

		if lastWasSep {
			continue
		}
		if cfg.maxLength > 0 && count+sepLen > cfg.maxLength {
			break
		}
		b.WriteString(cfg.separator)
		lastWasSep = true
		count += sepLen
	}

	result := b.String()
	if cfg.separator != "" {
		result = strings.TrimSuffix(result, cfg.separator)
	}

	if cfg.suffixLength > 0 {
		result = appendSuffix(result, cfg)
	}

	return result
}

// appendSuffix adds the random suffix, shortening the slug so the total stays
// within maxLength.
func appendSuffix(result string, cfg *config) string {
	suffixLen := cfg.suffixLength
	if cfg.maxLength > 0 && suffixLen > cfg.maxLength {
		suffixLen = cfg.maxLength
	}

	charset := random.LowerChars + random.DigitChars
	if !cfg.lowercase {
		charset = random.AlphanumericChars
	}
	suffix := random.String(suffixLen, charset)

	if cfg.maxLength > 0 {
		sepLen := len([]rune(cfg.separator))
		room := cfg.maxLength - sepLen - suffixLen
		runes := []rune(result)
		switch {
		case room <= 0:
			result = ""
		case len(runes) > room:
			result = strings.TrimSuffix(string(runes[:room]), cfg.separator)
		}
	}

	if result == "" {
		return suffix
	}
	return result + cfg.separator + suffix
}

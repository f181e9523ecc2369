package tabular

import (
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

// PlaceholderOption configures placeholder list generation.
type PlaceholderOption func(*placeholderConfig)

type placeholderConfig struct {
	prefix        string
	hasPrefix     bool
	forceQuestion bool
	dollar        bool
	dollarStart   int
}

// WithPrefix emits prefix0,prefix1,... regardless of the input keys.
// It takes precedence over every other option.
func WithPrefix(prefix string) PlaceholderOption {
	return func(c *placeholderConfig) {
		c.prefix = prefix
		c.hasPrefix = true
	}
}

// ForceQuestionMarks emits ? placeholders for named input as well.
func ForceQuestionMarks() PlaceholderOption {
	return func(c *placeholderConfig) {
		c.forceQuestion = true
	}
}

// Dollar emits PostgreSQL positional placeholders numbered from start
// ($1,$2,... for start 1). Values below 1 are raised to 1.
func Dollar(start int) PlaceholderOption {
	return func(c *placeholderConfig) {
		c.dollar = true
		c.dollarStart = max(start, 1)
	}
}

// Placeholders builds the placeholder list for a sequence of query arguments,
// for use in IN (...) and VALUES (...) clauses.
//
//	Placeholders([]int{7, 8, 9})                  // "?,?,?"
//	Placeholders([]int{7, 8}, WithPrefix(":p"))   // ":p0,:p1"
//	Placeholders([]int{7, 8}, Dollar(1))          // "$1,$2"
func Placeholders[T any](values []T, opts ...PlaceholderOption) string {
	return build(len(values), nil, opts)
}

// NamedPlaceholders builds the placeholder list for named query arguments.
// Without options the keys are emitted verbatim, in insertion order; they are
// expected to be valid placeholder tokens already (":name", "@name").
func NamedPlaceholders(params *Map[any], opts ...PlaceholderOption) string {
	return build(params.Len(), params.Keys(), opts)
}

func build(n int, names []Key, opts []PlaceholderOption) string {
	if n == 0 {
		return ""
	}

	cfg := &placeholderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	parts := make([]string, n)
	switch {
	case cfg.hasPrefix:
		for i := range parts {
			parts[i] = cfg.prefix + strconv.Itoa(i)
		}
	case cfg.dollar:
		for i := range parts {
			parts[i] = "$" + strconv.Itoa(cfg.dollarStart+i)
		}
	case names == nil || cfg.forceQuestion:
		for i := range parts {
			parts[i] = "?"
		}
	default:
		for i, name := range names {
			parts[i] = string(name)
		}
	}

	return strings.Join(parts, ",")
}

// NamedArgs pairs values with the names produced by
// Placeholders(values, WithPrefix("@"+prefix)), ready for pgx named arguments.
//
//	ids := []int{4, 8}
//	sql := "SELECT * FROM recipes WHERE id IN (" + Placeholders(ids, WithPrefix("@id")) + ")"
//	rows, err := pool.Query(ctx, sql, NamedArgs("id", ids))
func NamedArgs[T any](prefix string, values []T) pgx.NamedArgs {
	args := make(pgx.NamedArgs, len(values))
	for i, v := range values {
		args[prefix+strconv.Itoa(i)] = v
	}
	return args
}

// Args returns the values of named parameters in key order, matching the
// placeholders produced by NamedPlaceholders with ForceQuestionMarks or Dollar.
func Args(params *Map[any]) []any {
	return params.Values()
}

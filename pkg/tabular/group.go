package tabular

// GroupOption configures GroupBy.
type GroupOption func(*groupConfig)

type groupConfig struct {
	fields         []string
	directValue    bool
	skipIncomplete bool
}

// Select projects each grouped row down to the listed fields.
// Fields missing on a row are left out of its projection.
func Select(fields ...string) GroupOption {
	return func(c *groupConfig) {
		c.fields = fields
	}
}

// DirectValue replaces each projected row with the value of the first selected
// field present on it. It has no effect without Select.
func DirectValue() GroupOption {
	return func(c *groupConfig) {
		c.directValue = true
	}
}

// SkipIncomplete makes GroupBy skip rows without the grouping field instead of
// stopping at the first one.
func SkipIncomplete() GroupOption {
	return func(c *groupConfig) {
		c.skipIncomplete = true
	}
}

// GroupBy buckets rows by the value of field.
//
// Buckets hold full rows, projected rows (Select) or plain values (Select with
// DirectValue). By default the first row that lacks field ends the grouping and
// every row after it is dropped; use SkipIncomplete to skip such rows instead.
func GroupBy(t Table, field string, opts ...GroupOption) *Map[[]any] {
	cfg := &groupConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	result := NewMap[[]any](0)
	fullRow := len(cfg.fields) == 0

	for _, row := range t {
		k, ok := KeyOf(row[field])
		if !ok {
			if cfg.skipIncomplete {
				continue
			}
			break
		}

		var item any = row
		if !fullRow {
			item = project(row, cfg.fields, cfg.directValue)
		}

		bucket, _ := result.Get(k)
		result.Set(k, append(bucket, item))
	}

	return result
}

func project(row Row, fields []string, direct bool) any {
	if !direct {
		return row.Project(fields...)
	}
	for _, f := range fields {
		if v, ok := row.Get(f); ok {
			return v
		}
	}
	return Row{}
}

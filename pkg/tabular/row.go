package tabular

// DefaultField is the field used when a lookup is given no field name.
const DefaultField = "id"

// Row is a single record: field name to value.
type Row map[string]any

// Table is an ordered collection of rows.
type Table []Row

// Get returns the value of field. Nil values are reported as absent.
func (r Row) Get(field string) (any, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Has reports whether field is present with a non-nil value.
func (r Row) Has(field string) bool {
	_, ok := r.Get(field)
	return ok
}

// Value returns the value of field, or def when the field is absent.
func (r Row) Value(field string, def any) any {
	if v, ok := r.Get(field); ok {
		return v
	}
	return def
}

// Project returns a new row holding only the listed fields present on r.
func (r Row) Project(fields ...string) Row {
	out := make(Row, len(fields))
	for _, f := range fields {
		if v, ok := r.Get(f); ok {
			out[f] = v
		}
	}
	return out
}

// Column returns the values of field in table order, skipping rows without it.
func Column(t Table, field string) []any {
	values := make([]any, 0, len(t))
	for _, row := range t {
		if v, ok := row.Get(field); ok {
			values = append(values, v)
		}
	}
	return values
}

// IDs returns the distinct keys found in field, in first-seen order.
// Rows without the field, or with a value that is not a key, are skipped.
// An empty field name means DefaultField.
func IDs(t Table, field string) []Key {
	if field == "" {
		field = DefaultField
	}

	seen := make(map[Key]struct{}, len(t))
	ids := make([]Key, 0, len(t))
	for _, row := range t {
		k, ok := KeyOf(row[field])
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		ids = append(ids, k)
	}

	return ids
}

package tabular

// Index maps every row by the value of field.
//
// Index is all or nothing: if any row lacks field (or holds a value that is
// not a key) it returns nil and false, and the caller should keep using the
// original table, which is never modified. Rows sharing a value overwrite each
// other, the last one wins.
func Index(t Table, field string) (*Map[Row], bool) {
	if field == "" {
		return nil, false
	}

	result := NewMap[Row](len(t))
	for _, row := range t {
		k, ok := KeyOf(row[field])
		if !ok {
			return nil, false
		}
		result.Set(k, row)
	}

	return result, true
}

// IndexOr is Index with a fallback: it returns the indexed map, or nil and the
// untouched input table when indexing is not possible.
func IndexOr(t Table, field string) (*Map[Row], Table) {
	if m, ok := Index(t, field); ok {
		return m, nil
	}
	return nil, t
}

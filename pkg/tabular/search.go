package tabular

// Search returns the position of the first row whose field equals needle.
//
// Values are compared with KeyOf, so 5 and "5" match. The scan stops with a
// miss at the first row that does not carry field. An empty field name means
// DefaultField.
func Search(t Table, needle any, field string) (int, bool) {
	if field == "" {
		field = DefaultField
	}

	want, ok := KeyOf(needle)
	if !ok {
		return -1, false
	}

	for i, row := range t {
		got, ok := KeyOf(row[field])
		if !ok {
			return -1, false
		}
		if got == want {
			return i, true
		}
	}

	return -1, false
}

// SearchID is Search over DefaultField.
func SearchID(t Table, needle any) (int, bool) {
	return Search(t, needle, DefaultField)
}

// Contains reports whether any row's field equals needle, using Search rules.
func Contains(t Table, needle any, field string) bool {
	_, ok := Search(t, needle, field)
	return ok
}

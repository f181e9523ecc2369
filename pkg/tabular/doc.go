// Package tabular provides grouping, indexing and lookup helpers for in-memory
// tabular data: ordered sequences of loosely-typed rows, as returned by database
// queries or decoded from JSON/YAML documents.
//
// A Row is a map from field name to value, a Table is an ordered slice of rows.
// No schema is enforced: fields present on one row need not be present on
// another. A field is considered present when its key exists and its value is
// not nil.
//
// # Keys
//
// Grouping, indexing and searching compare values through KeyOf, which
// normalizes scalars to a string Key. Integers, integral floats and numeric
// strings with the same decimal form are equal (5, int64(5), 5.0 and "5" map to
// the key "5"); booleans map to "1" and "0". Nil values and compound values
// (maps, slices, structs) are never keys and are treated like absent fields.
//
// # Ordering
//
// Results are returned as *Map, an insertion-ordered map. Buckets and indexed
// rows come out in the order their keys were first seen in the input table, and
// the order survives JSON and YAML encoding.
//
// # Usage
//
//	table := tabular.Table{
//		{"category": "soup", "title": "Borscht"},
//		{"category": "salad", "title": "Olivier"},
//		{"category": "soup", "title": "Shchi"},
//	}
//
//	groups := tabular.GroupBy(table, "category",
//		tabular.Select("title"),
//		tabular.DirectValue(),
//	)
//	// soup: [Borscht Shchi], salad: [Olivier]
//
//	byID, ok := tabular.Index(rows, "id")
//	if !ok {
//		// at least one row has no id; rows is untouched
//	}
//
//	sql := "SELECT * FROM recipes WHERE id IN (" + tabular.Placeholders(ids) + ")"
//
// # Error handling
//
// The transforms never return errors. GroupBy always produces a (possibly
// truncated) result, Index and Search report failure through their boolean
// result. Only the decoding and pgx helpers, which perform I/O, return errors.
//
// All functions are pure: inputs are never mutated and no state is shared, so
// they are safe for concurrent use.
package tabular

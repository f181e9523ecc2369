package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/menuworks/enginekit/pkg/tabular"
)

func bucket(t *testing.T, m *tabular.Map[[]any], key any) []any {
	t.Helper()
	v, ok := m.Lookup(key)
	if !ok {
		t.Fatalf("bucket %v not found", key)
	}
	return v
}

func TestGroupBy(t *testing.T) {
	t.Parallel()

	t.Run("buckets follow row order", func(t *testing.T) {
		t.Parallel()

		table := tabular.Table{
			{"k": 1, "v": "a"},
			{"k": 2, "v": "b"},
			{"k": 1, "v": "c"},
		}

		result := tabular.GroupBy(table, "k")

		assert.Equal(t, []tabular.Key{"1", "2"}, result.Keys())
		assert.Equal(t, []any{
			tabular.Row{"k": 1, "v": "a"},
			tabular.Row{"k": 1, "v": "c"},
		}, bucket(t, result, 1))
		assert.Equal(t, []any{tabular.Row{"k": 2, "v": "b"}}, bucket(t, result, 2))
	})

	t.Run("missing group field stops grouping", func(t *testing.T) {
		t.Parallel()

		table := tabular.Table{
			{"k": 1},
			{"other": 2},
			{"k": 3},
		}

		result := tabular.GroupBy(table, "k")

		assert.Equal(t, []tabular.Key{"1"}, result.Keys())
		assert.Equal(t, []any{tabular.Row{"k": 1}}, bucket(t, result, 1))
	})

	t.Run("nil group value stops grouping", func(t *testing.T) {
		t.Parallel()

		table := tabular.Table{{"k": nil}, {"k": 1}}

		assert.Equal(t, 0, tabular.GroupBy(table, "k").Len())
	})

	t.Run("skip incomplete rows", func(t *testing.T) {
		t.Parallel()

		table := tabular.Table{
			{"k": 1},
			{"other": 2},
			{"k": 3},
		}

		result := tabular.GroupBy(table, "k", tabular.SkipIncomplete())

		assert.Equal(t, []tabular.Key{"1", "3"}, result.Keys())
	})

	t.Run("direct value projection", func(t *testing.T) {
		t.Parallel()

		table := tabular.Table{
			{"k": 1, "v": "a"},
			{"k": 1, "v": "b"},
		}

		result := tabular.GroupBy(table, "k", tabular.Select("v"), tabular.DirectValue())

		assert.Equal(t, []any{"a", "b"}, bucket(t, result, 1))
	})

	t.Run("direct value takes first present field", func(t *testing.T) {
		t.Parallel()

		table := tabular.Table{
			{"k": 1, "b": "second"},
			{"k": 1, "a": "first", "b": "second"},
			{"k": 1, "c": "none"},
		}

		result := tabular.GroupBy(table, "k", tabular.Select("a", "b"), tabular.DirectValue())

		assert.Equal(t, []any{"second", "first", tabular.Row{}}, bucket(t, result, 1))
	})

	t.Run("selective projection skips absent fields", func(t *testing.T) {
		t.Parallel()

		table := tabular.Table{
			{"k": "x", "v": 1, "w": 2, "z": 3},
			{"k": "x", "w": 4},
		}

		result := tabular.GroupBy(table, "k", tabular.Select("v", "w"))

		assert.Equal(t, []any{
			tabular.Row{"v": 1, "w": 2},
			tabular.Row{"w": 4},
		}, bucket(t, result, "x"))
	})

	t.Run("direct value without select keeps full rows", func(t *testing.T) {
		t.Parallel()

		table := tabular.Table{{"k": 1, "v": "a"}}

		result := tabular.GroupBy(table, "k", tabular.DirectValue())

		assert.Equal(t, []any{tabular.Row{"k": 1, "v": "a"}}, bucket(t, result, 1))
	})

	t.Run("loose keys share a bucket", func(t *testing.T) {
		t.Parallel()

		table := tabular.Table{{"k": 1}, {"k": "1"}, {"k": 1.0}}

		result := tabular.GroupBy(table, "k")

		assert.Equal(t, 1, result.Len())
		assert.Len(t, bucket(t, result, "1"), 3)
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, tabular.GroupBy(nil, "k").Len())
	})

	t.Run("input is not modified", func(t *testing.T) {
		t.Parallel()

		table := tabular.Table{{"k": 1, "v": "a"}}
		_ = tabular.GroupBy(table, "k", tabular.Select("v"))

		assert.Equal(t, tabular.Table{{"k": 1, "v": "a"}}, table)
	})
}

package tabular_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuworks/enginekit/pkg/tabular"
)

type fakeRows struct {
	fields []pgconn.FieldDescription
	data   [][]any
	pos    int
	err    error
	closed bool
}

func newFakeRows(columns []string, data ...[]any) *fakeRows {
	fields := make([]pgconn.FieldDescription, len(columns))
	for i, c := range columns {
		fields[i] = pgconn.FieldDescription{Name: c}
	}
	return &fakeRows{fields: fields, data: data}
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return r.fields }
func (r *fakeRows) Scan(dest ...any) error                       { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

type fakeQuerier struct {
	rows *fakeRows
	err  error
	sql  string
	args []any
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql = sql
	q.args = args
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	t.Run("collects rows by column name", func(t *testing.T) {
		t.Parallel()

		rows := newFakeRows([]string{"id", "title"},
			[]any{int32(1), "Borscht"},
			[]any{int32(2), nil},
		)

		table, err := tabular.FromRows(rows)
		require.NoError(t, err)

		assert.True(t, rows.closed)
		assert.Equal(t, tabular.Table{
			{"id": int32(1), "title": "Borscht"},
			{"id": int32(2), "title": nil},
		}, table)

		_, ok := tabular.Index(table, "id")
		assert.True(t, ok)
	})

	t.Run("uuid and numeric columns become keys", func(t *testing.T) {
		t.Parallel()

		id := uuid.MustParse("0b8a6a3e-4c1f-4f6e-9d2a-5e7c1b2a9f10")
		price := func(n int64, exp int32) pgtype.Numeric {
			return pgtype.Numeric{Int: big.NewInt(n), Exp: exp, Valid: true}
		}

		rows := newFakeRows([]string{"id", "price", "weight"},
			[]any{[16]byte(id), price(42, 0), price(125, -2)},
			[]any{[16]byte(uuid.Nil), price(420, -1), pgtype.Numeric{}},
		)

		table, err := tabular.FromRows(rows)
		require.NoError(t, err)
		assert.Equal(t, tabular.Table{
			{"id": id.String(), "price": int64(42), "weight": 1.25},
			{"id": uuid.Nil.String(), "price": int64(42), "weight": nil},
		}, table)

		index, ok := tabular.Index(table, "id")
		require.True(t, ok)
		assert.True(t, index.Has(tabular.Key(id.String())))

		groups := tabular.GroupBy(table, "price")
		assert.Equal(t, []tabular.Key{"42"}, groups.Keys())
		assert.Len(t, bucket(t, groups, 42), 2)
	})

	t.Run("propagates rows error", func(t *testing.T) {
		t.Parallel()

		rows := newFakeRows([]string{"id"})
		rows.err = errors.New("connection reset")

		_, err := tabular.FromRows(rows)
		assert.True(t, errors.Is(err, tabular.ErrFailedToReadRows))
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	q := &fakeQuerier{rows: newFakeRows([]string{"id"}, []any{int64(7)})}

	table, err := tabular.Query(context.Background(), q, "SELECT id FROM recipes WHERE id IN ($1)", 7)
	require.NoError(t, err)
	assert.Equal(t, tabular.Table{{"id": int64(7)}}, table)
	assert.Equal(t, []any{7}, q.args)

	failing := &fakeQuerier{err: errors.New("boom")}
	_, err = tabular.Query(context.Background(), failing, "SELECT 1")
	assert.True(t, errors.Is(err, tabular.ErrFailedToReadRows))
}

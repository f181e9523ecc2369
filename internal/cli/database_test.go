package cli_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuworks/enginekit/internal/cli"
	"github.com/menuworks/enginekit/pkg/pg"
)

type fakeRows struct {
	fields []pgconn.FieldDescription
	data   [][]any
	pos    int
}

func newFakeRows(columns []string, data ...[]any) *fakeRows {
	fields := make([]pgconn.FieldDescription, len(columns))
	for i, c := range columns {
		fields[i] = pgconn.FieldDescription{Name: c}
	}
	return &fakeRows{fields: fields, data: data}
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return r.fields }
func (r *fakeRows) Scan(...any) error                            { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.data[r.pos-1], nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

type fakeDB struct {
	rows    *fakeRows
	err     error
	pingErr error
	sql     string
	args    []any
	closed  bool
}

func (db *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.sql = sql
	db.args = args
	if db.err != nil {
		return nil, db.err
	}
	return db.rows, nil
}

func (db *fakeDB) Ping(context.Context) error { return db.pingErr }
func (db *fakeDB) Close()                     { db.closed = true }

func connectTo(db *fakeDB) cli.Option {
	return cli.WithConnector(func(context.Context, pg.Config) (cli.Database, error) {
		return db, nil
	})
}

func dishRows() *fakeRows {
	return newFakeRows([]string{"id", "menu_id", "name"},
		[]any{int64(1), int64(7), "Kompot"},
		[]any{int64(2), int64(3), "Borshch"},
		[]any{int64(3), int64(3), "Pelmeni"},
	)
}

func TestQueryCommand(t *testing.T) {
	t.Parallel()

	t.Run("positional arguments", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{rows: dishRows()}

		res := run(t, "", []string{"query", "SELECT * FROM dishes WHERE menu_id = $1", "3"}, connectTo(db))
		require.NoError(t, res.err)

		assert.Equal(t, "SELECT * FROM dishes WHERE menu_id = $1", db.sql)
		assert.Equal(t, []any{"3"}, db.args)
		assert.True(t, db.closed)
		assert.JSONEq(t, `[
			{"id":1,"menu_id":7,"name":"Kompot"},
			{"id":2,"menu_id":3,"name":"Borshch"},
			{"id":3,"menu_id":3,"name":"Pelmeni"}
		]`, res.stdout)
	})

	t.Run("ids expand to named arguments", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{rows: dishRows()}

		res := run(t, "", []string{
			"query", "SELECT * FROM dishes WHERE menu_id IN ({ids})",
			"--ids", "3,7", "--group", "menu_id",
		}, connectTo(db))
		require.NoError(t, res.err)

		assert.Equal(t, "SELECT * FROM dishes WHERE menu_id IN (@id0,@id1)", db.sql)
		assert.Equal(t, []any{pgx.NamedArgs{"id0": "3", "id1": "7"}}, db.args)

		var groups map[string][]map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &groups))
		assert.Len(t, groups["3"], 2)
	})

	t.Run("ids need the token", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{rows: dishRows()}

		res := run(t, "", []string{"query", "SELECT 1", "--ids", "3"}, connectTo(db))
		assert.ErrorIs(t, res.err, cli.ErrInvalidArgument)
		assert.Empty(t, db.sql)
	})

	t.Run("dates bind as DATE", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{rows: newFakeRows([]string{"id"})}

		res := run(t, "", []string{"query", "SELECT id FROM menus WHERE day = $1 AND title = $2", "08.03.2024", "lunch", "--dates"}, connectTo(db))
		require.NoError(t, res.err)

		require.Len(t, db.args, 2)
		date, ok := db.args[0].(pgtype.Date)
		require.True(t, ok)
		assert.True(t, date.Valid)
		assert.Equal(t, "2024-03-08", date.Time.Format("2006-01-02"))
		assert.Equal(t, "lunch", db.args[1])
		assert.JSONEq(t, `[]`, res.stdout)
	})

	t.Run("index", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{rows: dishRows()}

		res := run(t, "", []string{"query", "SELECT * FROM dishes", "--index", "name"}, connectTo(db))
		require.NoError(t, res.err)

		var indexed map[string]map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &indexed))
		assert.Equal(t, float64(2), indexed["Borshch"]["id"])
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{err: &pgconn.PgError{Code: "42P01", Message: `relation "dishes" does not exist`}}

		res := run(t, "", []string{"query", "SELECT * FROM dishes"}, connectTo(db))
		require.Error(t, res.err)
		assert.True(t, pg.IsUndefinedTableError(res.err))
		assert.Contains(t, res.stderr, "missing table")
		assert.True(t, db.closed)
	})

	t.Run("connect error", func(t *testing.T) {
		t.Parallel()
		connectErr := errors.New("connection refused")
		failing := cli.WithConnector(func(context.Context, pg.Config) (cli.Database, error) {
			return nil, connectErr
		})

		res := run(t, "", []string{"query", "SELECT 1"}, failing)
		assert.ErrorIs(t, res.err, connectErr)
	})
}

func TestPingCommand(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{}

		res := run(t, "", []string{"ping"}, connectTo(db))
		require.NoError(t, res.err)
		assert.Equal(t, "ok\n", res.stdout)
		assert.True(t, db.closed)
	})

	t.Run("unavailable", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{pingErr: errors.New("timeout")}

		res := run(t, "", []string{"ping"}, connectTo(db))
		assert.ErrorIs(t, res.err, pg.ErrHealthcheckFailed)
	})
}

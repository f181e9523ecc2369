package tabular

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is satisfied by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// FromRows drains a pgx result set into a Table keyed by column name.
// uuid columns become their text form and numeric columns become int64 or
// float64. The rows are closed before returning.
func FromRows(rows pgx.Rows) (Table, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, fd := range fields {
		names[i] = fd.Name
	}

	table := make(Table, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, errors.Join(ErrFailedToReadRows, err)
		}

		row := make(Row, len(names))
		for i, name := range names {
			if i < len(values) {
				row[name] = columnValue(values[i])
			}
		}
		table = append(table, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToReadRows, err)
	}

	return table, nil
}

// columnValue converts pgx's decoded uuid and numeric values into types
// KeyOf understands. Integral numerics stay exact when they fit int64.
func columnValue(v any) any {
	switch val := v.(type) {
	case [16]byte:
		return uuid.UUID(val).String()
	case pgtype.Numeric:
		if !val.Valid {
			return nil
		}
		if i, err := val.Int64Value(); err == nil && i.Valid {
			return i.Int64
		}
		if f, err := val.Float64Value(); err == nil && f.Valid {
			return f.Float64
		}
		return nil
	default:
		return v
	}
}

// Query runs sql and collects the result into a Table.
func Query(ctx context.Context, q Querier, sql string, args ...any) (Table, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadRows, err)
	}
	return FromRows(rows)
}

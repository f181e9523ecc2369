package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmptyConnectionString    = errors.New("pg: connection string is empty")
	ErrFailedToParseDBConfig    = errors.New("pg: invalid connection string")
	ErrFailedToOpenDBConnection = errors.New("pg: could not connect")
	ErrHealthcheckFailed        = errors.New("pg: database is unreachable")
)

// SQLSTATE codes the predicates below look for.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeUndefinedTable      = "42P01"
)

// IsNotFoundError reports whether err wraps pgx.ErrNoRows.
func IsNotFoundError(err error) bool { return errors.Is(err, pgx.ErrNoRows) }

// IsTxClosedError reports whether err wraps pgx.ErrTxClosed.
func IsTxClosedError(err error) bool { return errors.Is(err, pgx.ErrTxClosed) }

// IsDuplicateKeyError reports a unique constraint violation.
func IsDuplicateKeyError(err error) bool { return hasCode(err, codeUniqueViolation) }

// IsForeignKeyViolationError reports a broken foreign key reference.
func IsForeignKeyViolationError(err error) bool { return hasCode(err, codeForeignKeyViolation) }

// IsUndefinedTableError reports a query against a relation that does not exist.
func IsUndefinedTableError(err error) bool { return hasCode(err, codeUndefinedTable) }

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

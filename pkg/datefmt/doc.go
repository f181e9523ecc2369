// Package datefmt converts MySQL-style DATE and DATETIME strings to display
// formats and back, using Go time layouts.
//
// Periodic dates, events that recur every year, are stored with the
// placeholder year 1004 and rendered without it:
//
//	datefmt.ConvertDateWithoutYear("1004-03-08", "", 0)           // "08.03"
//	datefmt.ConvertDateWithoutYear("1004-03-08", "2 January", 2025) // "8 March"
//	datefmt.ConvertDate("2024-12-31", "")                         // "31.12.24"
//	datefmt.ToMySQLDate("31.12.2024", "")                         // "2024-12-31"
//
// PgDate bridges the same strings into pgtype.Date for pgx queries.
package datefmt

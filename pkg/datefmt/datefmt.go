package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	// MySQLDate is the storage layout for DATE columns.
	MySQLDate = "2006-01-02"
	// MySQLDateTime is the storage layout for DATETIME columns.
	MySQLDateTime = "2006-01-02 15:04:05"

	// PeriodicYear marks dates that repeat every year ("1004-MM-DD").
	PeriodicYear = 1004

	DefaultDayLayout      = "02.01"
	DefaultDateLayout     = "02.01.06"
	DefaultDateTimeLayout = "02.01.2006 15:04"
	DefaultInputLayout    = "02.01.2006"
)

// FromDayOfYear returns the date of the zero-based day within year, in UTC.
// Day 0 is January 1st; the last valid day is 364, or 365 in leap years.
func FromDayOfYear(day, year int) (time.Time, error) {
	if days := daysIn(year); day < 0 || day >= days {
		return time.Time{}, fmt.Errorf("%w: day %d of %d (%d days)", ErrDayOutOfRange, day, year, days)
	}
	return time.Date(year, time.January, 1+day, 0, 0, 0, 0, time.UTC), nil
}

// FormatDayOfYear formats the zero-based day of year with layout,
// DefaultDayLayout ("02.01") when layout is empty.
func FormatDayOfYear(day, year int, layout string) (string, error) {
	t, err := FromDayOfYear(day, year)
	if err != nil {
		return "", err
	}
	return t.Format(orDefault(layout, DefaultDayLayout)), nil
}

// ConvertDateWithoutYear renders a periodic "YYYY-MM-DD" date (year part
// ignored). An empty layout returns "DD.MM" straight from the input text;
// otherwise the month and day are placed in year and formatted, so 02-29 in a
// non-leap year rolls over to March 1st.
func ConvertDateWithoutYear(s, layout string, year int) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if layout == "" {
		return parts[2] + "." + parts[1], nil
	}

	_, m, d, err := atoiParts(parts)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return time.Date(year, time.Month(m), d, 0, 0, 0, 0, time.UTC).Format(layout), nil
}

// ConvertDate renders a "YYYY-MM-DD" date with layout, DefaultDateLayout
// ("02.01.06") when empty. Out-of-range components roll over the way
// time.Date normalizes them.
func ConvertDate(s, layout string) (string, error) {
	t, err := parseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(orDefault(layout, DefaultDateLayout)), nil
}

// ConvertDateTime renders a "YYYY-MM-DD HH:MM:SS" value with layout,
// DefaultDateTimeLayout when empty. Missing seconds are accepted.
func ConvertDateTime(s, layout string) (string, error) {
	datePart, timePart, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}

	date, err := parseDate(datePart)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}

	clock := strings.Split(strings.TrimSpace(timePart), ":")
	if len(clock) == 2 {
		clock = append(clock, "0")
	}
	h, m, sec, err := atoiParts(clock)
	if err != nil || len(clock) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}

	t := time.Date(date.Year(), date.Month(), date.Day(), h, m, sec, 0, time.UTC)
	return t.Format(orDefault(layout, DefaultDateTimeLayout)), nil
}

// ToMySQLDate parses s with inputLayout (DefaultInputLayout, "02.01.2006",
// when empty) and returns it as "YYYY-MM-DD". Parsing is strict.
func ToMySQLDate(s, inputLayout string) (string, error) {
	t, err := time.Parse(orDefault(inputLayout, DefaultInputLayout), strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return t.Format(MySQLDate), nil
}

// PgDate converts s to a pgtype.Date, trying MySQLDate first and then each of
// layouts. Blank or unparsable input yields an invalid (NULL) date.
func PgDate(s string, layouts ...string) pgtype.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Date{}
	}

	for _, layout := range append([]string{MySQLDate}, layouts...) {
		if t, err := time.Parse(layout, s); err == nil {
			return pgtype.Date{Time: t, Valid: true}
		}
	}
	return pgtype.Date{}
}

func parseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	y, m, d, err := atoiParts(parts)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), nil
}

func atoiParts(parts []string) (int, int, int, error) {
	var out [3]int
	for i := range min(len(parts), 3) {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return 0, 0, 0, err
		}
		out[i] = n
	}
	return out[0], out[1], out[2], nil
}

func daysIn(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

func orDefault(layout, def string) string {
	if layout == "" {
		return def
	}
	return layout
}

package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuworks/enginekit/pkg/datefmt"
)

func TestFromDayOfYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		day     int
		year    int
		want    string
		wantErr bool
	}{
		{name: "first day", day: 0, year: 2025, want: "2025-01-01"},
		{name: "february first", day: 31, year: 2025, want: "2025-02-01"},
		{name: "leap day", day: 59, year: 2024, want: "2024-02-29"},
		{name: "march first non-leap", day: 59, year: 2025, want: "2025-03-01"},
		{name: "last day leap", day: 365, year: 2024, want: "2024-12-31"},
		{name: "past end non-leap", day: 365, year: 2025, wantErr: true},
		{name: "negative", day: -1, year: 2025, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := datefmt.FromDayOfYear(tt.day, tt.year)
			if tt.wantErr {
				assert.ErrorIs(t, err, datefmt.ErrDayOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(datefmt.MySQLDate))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestFormatDayOfYear(t *testing.T) {
	t.Parallel()

	got, err := datefmt.FormatDayOfYear(41, 2025, "")
	require.NoError(t, err)
	assert.Equal(t, "11.02", got)

	got, err = datefmt.FormatDayOfYear(41, 2025, "Jan 2")
	require.NoError(t, err)
	assert.Equal(t, "Feb 11", got)

	_, err = datefmt.FormatDayOfYear(400, 2025, "")
	assert.ErrorIs(t, err, datefmt.ErrDayOutOfRange)
}

func TestConvertDateWithoutYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		layout  string
		year    int
		want    string
		wantErr bool
	}{
		{name: "fast path keeps text", in: "1004-03-08", want: "08.03"},
		{name: "fast path ignores year value", in: "1004-3-8", want: "8.3"},
		{name: "layout", in: "1004-03-08", layout: "2 January", year: 2025, want: "8 March"},
		{name: "layout uses target year", in: "1004-12-31", layout: "02.01.2006", year: 2030, want: "31.12.2030"},
		{name: "leap day rolls over", in: "1004-02-29", layout: "02.01", year: 2025, want: "01.03"},
		{name: "leap day kept in leap year", in: "1004-02-29", layout: "02.01", year: 2024, want: "29.02"},
		{name: "not a date", in: "March 8", wantErr: true},
		{name: "non numeric with layout", in: "1004-xx-08", layout: "02.01", year: 2025, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := datefmt.ConvertDateWithoutYear(tt.in, tt.layout, tt.year)
			if tt.wantErr {
				assert.ErrorIs(t, err, datefmt.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		layout  string
		want    string
		wantErr bool
	}{
		{name: "default layout", in: "2024-12-31", want: "31.12.24"},
		{name: "custom layout", in: "2024-01-05", layout: "Monday, 2 Jan 2006", want: "Friday, 5 Jan 2024"},
		{name: "overflow normalizes", in: "2023-02-30", layout: datefmt.MySQLDate, want: "2023-03-02"},
		{name: "garbage", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := datefmt.ConvertDate(tt.in, tt.layout)
			if tt.wantErr {
				assert.ErrorIs(t, err, datefmt.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertDateTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		layout  string
		want    string
		wantErr bool
	}{
		{name: "default layout", in: "2024-12-31 18:45:10", want: "31.12.2024 18:45"},
		{name: "custom layout", in: "2024-12-31 08:05:09", layout: "15:04:05", want: "08:05:09"},
		{name: "without seconds", in: "2024-12-31 08:05", layout: datefmt.MySQLDateTime, want: "2024-12-31 08:05:00"},
		{name: "date only", in: "2024-12-31", wantErr: true},
		{name: "bad clock", in: "2024-12-31 noon", wantErr: true},
		{name: "bad date", in: "31.12.2024 10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := datefmt.ConvertDateTime(tt.in, tt.layout)
			if tt.wantErr {
				assert.ErrorIs(t, err, datefmt.ErrInvalidDateTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMySQLDate(t *testing.T) {
	t.Parallel()

	got, err := datefmt.ToMySQLDate("31.12.2024", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", got)

	got, err = datefmt.ToMySQLDate("12/31/24", "01/02/06")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", got)

	_, err = datefmt.ToMySQLDate("31.02.2024", "")
	assert.ErrorIs(t, err, datefmt.ErrInvalidDate)

	_, err = datefmt.ToMySQLDate("2024-12-31", "")
	assert.ErrorIs(t, err, datefmt.ErrInvalidDate)
}

func TestPgDate(t *testing.T) {
	t.Parallel()

	d := datefmt.PgDate("2024-12-31")
	require.True(t, d.Valid)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), d.Time)

	d = datefmt.PgDate(" 31.12.2024 ", datefmt.DefaultInputLayout)
	require.True(t, d.Valid)
	assert.Equal(t, 2024, d.Time.Year())

	assert.False(t, datefmt.PgDate("").Valid)
	assert.False(t, datefmt.PgDate("31.12.2024").Valid)
}

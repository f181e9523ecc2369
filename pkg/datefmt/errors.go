package datefmt

import "errors"

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidDateTime = errors.New("invalid date-time")
	ErrDayOutOfRange   = errors.New("day of year out of range")
)

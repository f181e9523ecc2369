package cli

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrInvalidOutput   = errors.New("invalid output format")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownStorage  = errors.New("unknown storage driver")
	ErrNotFound        = errors.New("not found")
	ErrIncompleteIndex = errors.New("row without index field")
)

package tabular

import "errors"

var (
	ErrUnknownFormat    = errors.New("unknown table format")
	ErrFailedToDecode   = errors.New("failed to decode table")
	ErrFailedToOpenFile = errors.New("failed to open table file")
	ErrFailedToReadRows = errors.New("failed to read rows")
)

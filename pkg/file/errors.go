package file

import "errors"

// Path errors shared by both backends.
var (
	ErrInvalidPath       = errors.New("file: path leaves the storage root")
	ErrFileNotFound      = errors.New("file: not found")
	ErrDirectoryNotFound = errors.New("file: directory not found")
	ErrNotDirectory      = errors.New("file: not a directory")
	ErrIsDirectory       = errors.New("file: is a directory")
)

// Local filesystem failures.
var (
	ErrFailedToOpenFile        = errors.New("file: open failed")
	ErrFailedToReadFile        = errors.New("file: read failed")
	ErrFailedToWriteFile       = errors.New("file: write failed")
	ErrFailedToCreateFile      = errors.New("file: create failed")
	ErrFailedToDeleteFile      = errors.New("file: delete failed")
	ErrFailedToCreateDirectory = errors.New("file: mkdir failed")
	ErrFailedToDeleteDirectory = errors.New("file: rmdir failed")
	ErrFailedToReadDirectory   = errors.New("file: readdir failed")
	ErrFailedToStatPath        = errors.New("file: stat failed")
	ErrFailedToGetAbsolutePath = errors.New("file: cannot resolve absolute path")
)

// S3 failures, mapped from API error codes.
var (
	ErrBucketNotFound     = errors.New("file: bucket not found")
	ErrAccessDenied       = errors.New("file: access denied")
	ErrRequestTimeout     = errors.New("file: s3 request timed out")
	ErrServiceUnavailable = errors.New("file: s3 unavailable, retry later")
	ErrInvalidObjectState = errors.New("file: object is archived")
	ErrOperationTimeout   = errors.New("file: operation timed out")
	ErrOperationCanceled  = errors.New("file: operation canceled")
	ErrPaginatorNil       = errors.New("file: no paginator for s3 client")
)

// Configuration errors.
var (
	ErrInvalidConfig      = errors.New("file: invalid storage configuration")
	ErrFailedToLoadConfig = errors.New("file: cannot load aws config")
)

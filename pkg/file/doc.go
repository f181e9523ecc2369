// Package file stores and moves files on the local filesystem or in S3.
//
// Both backends implement Storage. Writes and copies create missing parent
// directories on the fly; every path is confined to the storage root, and
// parent references that would escape it fail with ErrInvalidPath.
//
//	storage, err := file.NewLocalStorage("./var/uploads", "/files")
//	if err != nil {
//		return err
//	}
//
//	dst := file.ShardPath(dishID) + "/photo." + file.Ext(upload.Filename)
//	stored, err := storage.Write(ctx, dst, upload)
//	if err != nil {
//		return err
//	}
//	url := storage.URL(stored.RelativePath)
//
// LocalStorage writes through a uuid-named temp file in the target directory and
// renames it into place. S3Storage streams the body to PutObject and copies
// server-side with CopyObject; it has no real directories, so MkdirAll only
// validates the path.
//
//	storage, err := file.NewS3Storage(ctx, file.S3Config{
//		Bucket:   "menus",
//		Region:   "eu-central-1",
//		Endpoint: "http://localhost:9000", // MinIO
//		ForcePathStyle: true,
//	})
//
// S3 failures are classified into the package errors (ErrFileNotFound,
// ErrAccessDenied, ErrOperationTimeout, ...) so callers can use errors.Is
// regardless of backend.
//
// Helpers:
//
//   - ShardPath spreads ids across a two-level md5-derived tree ("84/9b/1")
//   - Ext returns the lowercased extension without the dot
//   - SanitizeFilename strips directories and NUL bytes from client filenames
//   - DetectMIMEType sniffs content without consuming it
package file

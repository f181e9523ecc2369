package file

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
	copyBuf              = 32 << 10
)

// LocalStorage keeps files under a single root directory. Paths that would
// leave the root are rejected with ErrInvalidPath.
type LocalStorage struct {
	root         string
	baseURL      string
	writeTimeout time.Duration
}

// LocalOption tweaks a LocalStorage.
type LocalOption func(*LocalStorage)

// WithLocalWriteTimeout bounds Write and Copy. Zero leaves the caller's deadline alone.
func WithLocalWriteTimeout(timeout time.Duration) LocalOption {
	return func(s *LocalStorage) { s.writeTimeout = timeout }
}

// NewLocalStorage creates root if needed. baseURL prefixes relative paths in URL.
func NewLocalStorage(root, baseURL string, opts ...LocalOption) (*LocalStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: storage directory is required", ErrInvalidConfig)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}
	if err := os.MkdirAll(abs, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	if baseURL != "" {
		baseURL = strings.TrimSuffix(baseURL, "/") + "/"
	}

	s := &LocalStorage{root: abs, baseURL: baseURL}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Write stores r at path, creating parent directories. The content lands in
// a temp file beside the target and is renamed over it once complete.
func (s *LocalStorage) Write(ctx context.Context, path string, r io.Reader) (*File, error) {
	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := s.abs(path)
	if err != nil {
		return nil, err
	}
	if target == s.root {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	mimeType, src, err := DetectMIMEType(target, r)
	if err != nil {
		return nil, err
	}

	size, err := s.writeAtomic(ctx, dir, target, src)
	if err != nil {
		return nil, err
	}
	return s.describe(target, size, mimeType), nil
}

func (s *LocalStorage) writeAtomic(ctx context.Context, dir, target string, src io.Reader) (int64, error) {
	tmp := filepath.Join(dir, "."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailedToCreateFile, err)
	}

	n, err := copyContext(ctx, f, src)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: %v", ErrFailedToWriteFile, cerr)
	}
	if err == nil {
		if rerr := os.Rename(tmp, target); rerr != nil {
			err = fmt.Errorf("%w: %v", ErrFailedToWriteFile, rerr)
		}
	}
	if err != nil {
		_ = os.Remove(tmp)
		return 0, err
	}
	return n, nil
}

// Copy duplicates the regular file src into dst.
func (s *LocalStorage) Copy(ctx context.Context, src, dst string) (*File, error) {
	abs, info, err := s.stat(src, ErrFileNotFound)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, src)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	return s.Write(ctx, dst, f)
}

// MkdirAll creates dir with its parents. An existing directory is fine.
func (s *LocalStorage) MkdirAll(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	abs, err := s.abs(dir)
	if err != nil {
		return err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	if err := os.MkdirAll(abs, dirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}
	return nil
}

// Delete removes one file; directories need DeleteDir.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	abs, info, err := s.stat(path, ErrFileNotFound)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteFile, err)
	}
	return nil
}

// DeleteDir removes dir recursively. The root itself is refused.
func (s *LocalStorage) DeleteDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	abs, info, err := s.stat(dir, ErrDirectoryNotFound)
	if err != nil {
		return err
	}
	if abs == s.root {
		return fmt.Errorf("%w: refusing to delete storage root", ErrInvalidPath)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteDirectory, err)
	}
	return nil
}

// Exists reports whether path names a file or directory inside the root.
func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}
	_, _, err := s.stat(path, ErrFileNotFound)
	return err == nil
}

// List returns the direct children of dir sorted by name.
func (s *LocalStorage) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, info, err := s.stat(dir, ErrDirectoryNotFound)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	children, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadDirectory, err)
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		childInfo, err := child.Info()
		if err != nil {
			// removed after ReadDir
			continue
		}

		entry := Entry{
			Name:  child.Name(),
			Path:  s.rel(filepath.Join(abs, child.Name())),
			IsDir: child.IsDir(),
		}
		if !entry.IsDir {
			entry.Size = childInfo.Size()
		}
		entries = append(entries, entry)
	}

	slices.SortFunc(entries, func(a, b Entry) int { return cmp.Compare(a.Name, b.Name) })
	return entries, nil
}

// URL prefixes relative paths with the base URL; absolute paths pass through.
func (s *LocalStorage) URL(path string) string {
	path = filepath.ToSlash(filepath.Clean(path))
	if strings.HasPrefix(path, "/") {
		return path
	}
	return s.baseURL + path
}

func (s *LocalStorage) describe(abs string, size int64, mimeType string) *File {
	return &File{
		Filename:     filepath.Base(abs),
		Size:         size,
		MIMEType:     mimeType,
		Extension:    Ext(abs),
		AbsolutePath: abs,
		RelativePath: s.rel(abs),
	}
}

func (s *LocalStorage) rel(abs string) string {
	rel, err := filepath.Rel(s.root, abs)
	if err != nil {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

// abs maps path into the root, failing when it would escape.
func (s *LocalStorage) abs(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(s.root, filepath.Clean(path)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}
	if abs != s.root && !strings.HasPrefix(abs, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return abs, nil
}

// stat resolves path and stats it, reporting a missing target as notFound.
func (s *LocalStorage) stat(path string, notFound error) (string, fs.FileInfo, error) {
	abs, err := s.abs(path)
	if err != nil {
		return "", nil, err
	}
	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", nil, fmt.Errorf("%w: %s", notFound, path)
	case err != nil:
		return "", nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	return abs, info, nil
}

// copyContext copies src to dst, giving up between chunks once ctx is done.
func copyContext(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	var total int64
	buf := make([]byte, copyBuf)
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		n, rerr := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			total += int64(w)
			if werr != nil {
				return total, fmt.Errorf("%w: %v", ErrFailedToWriteFile, werr)
			}
		}
		switch {
		case rerr == io.EOF:
			return total, nil
		case rerr != nil:
			return total, fmt.Errorf("%w: %v", ErrFailedToReadFile, rerr)
		}
	}
}

package file

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

// File describes a stored file.
type File struct {
	Filename     string `json:"filename" yaml:"filename"`
	Size         int64  `json:"size" yaml:"size"`
	MIMEType     string `json:"mime_type" yaml:"mime_type"`
	Extension    string `json:"extension" yaml:"extension"`
	AbsolutePath string `json:"absolute_path,omitempty" yaml:"absolute_path,omitempty"` // Empty for object storage
	RelativePath string `json:"relative_path" yaml:"relative_path"`
}

// Entry represents a file or directory entry.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	IsDir bool   `json:"is_dir" yaml:"is_dir"`
	Size  int64  `json:"size" yaml:"size"`
}

// Storage is implemented by the local filesystem and S3 backends.
// Parent directories of written or copied files are created on the fly.
type Storage interface {
	// Write stores the content of r at path, replacing an existing file.
	Write(ctx context.Context, path string, r io.Reader) (*File, error)
	// Copy duplicates the file at src to dst.
	Copy(ctx context.Context, src, dst string) (*File, error)
	// MkdirAll creates dir together with any missing parents.
	MkdirAll(ctx context.Context, dir string) error
	// Delete removes a single file.
	Delete(ctx context.Context, path string) error
	// DeleteDir recursively removes a directory and all its contents.
	DeleteDir(ctx context.Context, dir string) error
	// Exists checks if a file or directory exists.
	Exists(ctx context.Context, path string) bool
	// List returns all entries in a directory (non-recursive).
	List(ctx context.Context, dir string) ([]Entry, error)
	// URL returns the public URL for a file.
	URL(path string) string
}

// sniffLen is the maximum number of bytes http.DetectContentType looks at.
const sniffLen = 512

// DetectMIMEType sniffs the content type of r from its first bytes, falling
// back to the extension of name when the content is not conclusive.
// The returned reader yields the full original content, sniffed bytes included.
func DetectMIMEType(name string, r io.Reader) (string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	head = head[:n]

	mimeType := http.DetectContentType(head)
	if isGeneric(mimeType) {
		if byExt := mime.TypeByExtension(filepath.Ext(name)); byExt != "" {
			mimeType = byExt
		}
	}

	return mimeType, io.MultiReader(bytes.NewReader(head), r), nil
}

func isGeneric(mimeType string) bool {
	return mimeType == "application/octet-stream" || strings.HasPrefix(mimeType, "text/plain")
}

// Ext returns the lowercased extension of name without the leading dot.
// Names without an extension yield an empty string.
//
// Example:
//
//	file.Ext("photos/Menu.JPG") // "jpg"
func Ext(name string) string {
	name = path.Base(filepath.ToSlash(name))
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// ShardPath spreads ids over a two-level directory tree derived from the
// md5 of the id: the second-to-last and last byte pairs of the hex digest.
//
// Example:
//
//	file.ShardPath("1") // "84/9b/1"
func ShardPath(id string) string {
	sum := md5.Sum([]byte(id))
	h := hex.EncodeToString(sum[:])
	return h[len(h)-4:len(h)-2] + "/" + h[len(h)-2:] + "/" + id
}

// SanitizeFilename removes any path components and dangerous characters from a filename
// to prevent path traversal attacks and other security issues.
// Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = path.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}

// countingReader tracks how many bytes pass through it.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuworks/enginekit/internal/cli"
	"github.com/menuworks/enginekit/pkg/file"
)

type stored struct {
	Filename     string `json:"filename"`
	Size         int64  `json:"size"`
	MIMEType     string `json:"mime_type"`
	Extension    string `json:"extension"`
	RelativePath string `json:"relative_path"`
	URL          string `json:"url"`
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(src, []byte(content), 0o644))
	return src
}

func TestStoreCommand(t *testing.T) {
	t.Parallel()

	t.Run("writes under the shard directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		storage, err := file.NewLocalStorage(dir, "/media")
		require.NoError(t, err)
		src := writeSource(t, "menu.json", `{"dish":"borshch"}`)

		res := run(t, "", []string{"store", "1", src}, cli.WithStorage(storage))
		require.NoError(t, res.err)

		var got stored
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
		assert.Equal(t, stored{
			Filename:     "menu.json",
			Size:         18,
			MIMEType:     "application/json",
			Extension:    "json",
			RelativePath: "84/9b/1/menu.json",
			URL:          "/media/84/9b/1/menu.json",
		}, got)
		assert.FileExists(t, filepath.Join(dir, "84", "9b", "1", "menu.json"))
		assert.Contains(t, res.stderr, "file stored")
	})

	t.Run("custom name is sanitized", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		storage, err := file.NewLocalStorage(dir, "")
		require.NoError(t, err)
		src := writeSource(t, "upload.tmp", "x")

		res := run(t, "", []string{"store", "42", src, "--name", "../../Photo.JPG"}, cli.WithStorage(storage))
		require.NoError(t, res.err)
		assert.FileExists(t, filepath.Join(dir, "58", "a6", "42", "Photo.JPG"))
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewLocalStorage(t.TempDir(), "")
		require.NoError(t, err)

		res := run(t, "", []string{"store", "1", filepath.Join(t.TempDir(), "nope.txt")}, cli.WithStorage(storage))
		assert.ErrorIs(t, res.err, file.ErrFailedToOpenFile)
	})
}

// Environment tests run sequentially: t.Setenv is incompatible with t.Parallel.

func TestStoreCommand_ConfiguredStorage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENGINEKIT_STORAGE_DIR", dir)
	t.Setenv("ENGINEKIT_LOG_FORMAT", "json")
	src := writeSource(t, "lunch.txt", "soup")

	res := run(t, "", []string{"store", "7", src})
	require.NoError(t, res.err)

	var got stored
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, file.ShardPath("7")+"/lunch.txt", got.RelativePath)
	assert.Equal(t, "/files/"+got.RelativePath, got.URL)
	assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(got.RelativePath)))
	assert.Contains(t, res.stderr, `"command":"store"`)
	assert.Contains(t, res.stderr, `"env":"development"`)
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{name: "log level", env: map[string]string{"ENGINEKIT_LOG_LEVEL": "loud"}, want: cli.ErrInvalidConfig},
		{name: "log format", env: map[string]string{"ENGINEKIT_LOG_FORMAT": "xml"}, want: cli.ErrInvalidConfig},
		{name: "storage driver", env: map[string]string{"ENGINEKIT_STORAGE_DRIVER": "ftp"}, want: cli.ErrUnknownStorage},
		{name: "s3 without bucket", env: map[string]string{"ENGINEKIT_STORAGE_DRIVER": "s3"}, want: file.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			src := writeSource(t, "a.txt", "x")

			res := run(t, "", []string{"store", "1", src})
			assert.ErrorIs(t, res.err, tt.want)
		})
	}
}

func TestProductionLogging(t *testing.T) {
	t.Setenv("ENGINEKIT_ENV", "production")
	t.Setenv("ENGINEKIT_LOG_LEVEL", "debug")

	res := run(t, `[{"id":1}]`, []string{"ids"})
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, `"msg":"table loaded"`)
	assert.Contains(t, res.stderr, `"rows":1`)
	assert.Contains(t, res.stderr, `"service":"enginekit"`)
}

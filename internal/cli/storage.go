package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/menuworks/enginekit/pkg/file"
	"github.com/menuworks/enginekit/pkg/logger"
)

type storedFile struct {
	file.File `yaml:",inline"`
	URL       string `json:"url" yaml:"url"`
}

func addStorageCommands(root *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "store id file",
		Short: "Copy a file into storage under the sharded directory of id",
		Long: `Copy a local file into the configured storage (ENGINEKIT_STORAGE_DRIVER:
local or s3) at <shard(id)>/<filename> and print its metadata and URL.`,
		Args: cobra.ExactArgs(2),
		RunE: a.store,
	}
	cmd.Flags().String("name", "", "stored filename (default: the source file name)")
	root.AddCommand(cmd)
}

func (a *app) store(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	storage := a.storage
	if storage == nil {
		var err error
		storage, err = newStorage(ctx, a.cfg.Storage)
		if err != nil {
			return err
		}
	}

	src, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("%w: %v", file.ErrFailedToOpenFile, err)
	}
	defer func() { _ = src.Close() }()

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = filepath.Base(args[1])
	}
	dst := file.ShardPath(args[0]) + "/" + file.SanitizeFilename(name)

	stored, err := storage.Write(ctx, dst, src)
	if err != nil {
		return err
	}
	a.log.InfoContext(ctx, "file stored",
		logger.Path(stored.RelativePath),
		slog.Int64("size", stored.Size),
	)

	return a.render(cmd, storedFile{File: *stored, URL: storage.URL(stored.RelativePath)})
}

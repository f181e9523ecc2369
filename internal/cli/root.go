package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/menuworks/enginekit/pkg/config"
	"github.com/menuworks/enginekit/pkg/file"
	"github.com/menuworks/enginekit/pkg/logger"
	"github.com/menuworks/enginekit/pkg/pg"
	"github.com/menuworks/enginekit/pkg/tabular"
)

// Database is the subset of *pgxpool.Pool used by the query and ping commands.
type Database interface {
	tabular.Querier
	pg.Pinger
	Close()
}

// Connector opens a Database from pool settings.
type Connector func(ctx context.Context, cfg pg.Config) (Database, error)

// Option configures the root command.
type Option func(*app)

// WithConnector replaces the Postgres connector.
func WithConnector(connect Connector) Option {
	return func(a *app) {
		a.connect = connect
	}
}

// WithStorage makes the store command use storage instead of the configured backend.
func WithStorage(storage file.Storage) Option {
	return func(a *app) {
		a.storage = storage
	}
}

type app struct {
	cfg     Config
	log     *slog.Logger
	connect Connector
	storage file.Storage

	envFiles []string
	output   string
	input    string
	format   string
}

// NewRootCommand builds the enginekit command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{connect: connectPool}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:               "enginekit",
		Short:             "Group, index and search tables; build placeholders, slugs and storage paths",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputJSON, "output format for structured results: json, yaml or html")
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "load environment from these files instead of .env")

	addTableCommands(root, a)
	addDatabaseCommands(root, a)
	addTextCommands(root, a)
	addStorageCommands(root, a)
	addDateCommands(root, a)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.output = strings.ToLower(a.output)
	switch a.output {
	case outputJSON, outputYAML, outputHTML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, a.output)
	}

	opts := []config.Option{config.WithPrefix(EnvPrefix)}
	if len(a.envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(a.envFiles...))
	}

	cfg, err := config.Parse[Config](opts...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := newLogger(cfg, logger.WithOutput(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.log = log

	cmd.SetContext(context.WithValue(cmd.Context(), commandKey{}, cmd.Name()))
	return nil
}

func connectPool(ctx context.Context, cfg pg.Config) (Database, error) {
	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

var _ Database = (*pgxpool.Pool)(nil)

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/menuworks/enginekit/pkg/file"
	"github.com/menuworks/enginekit/pkg/logger"
	"github.com/menuworks/enginekit/pkg/pg"
)

// EnvPrefix is prepended to every environment variable read by the CLI.
const EnvPrefix = "ENGINEKIT_"

// Config is the CLI configuration, read from ENGINEKIT_* variables.
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Storage  StorageConfig `envPrefix:"STORAGE_"`
	Postgres pg.Config
}

// StorageConfig selects and configures the file storage backend.
type StorageConfig struct {
	Driver       string        `env:"DRIVER" envDefault:"local"`
	Dir          string        `env:"DIR" envDefault:"./var/storage"`
	BaseURL      string        `env:"BASE_URL"` // Defaults to /files/ for local storage, the bucket URL for S3
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`

	S3Bucket         string `env:"S3_BUCKET"`
	S3Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"S3_SECRET_KEY"`
	S3Endpoint       string `env:"S3_ENDPOINT"`
	S3ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"`
}

type commandKey struct{}

func newLogger(cfg Config, opts ...logger.Option) (*slog.Logger, error) {
	options := []logger.Option{
		logger.WithEnvironment(cfg.Env, "enginekit"),
		logger.WithContextValue("command", commandKey{}),
	}

	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, cfg.LogLevel)
		}
		options = append(options, logger.WithLevel(level))
	}

	switch format := logger.Format(strings.ToLower(cfg.LogFormat)); format {
	case "":
	case logger.FormatJSON, logger.FormatText:
		options = append(options, logger.WithFormat(format))
	default:
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, cfg.LogFormat)
	}

	return logger.New(append(options, opts...)...), nil
}

func newStorage(ctx context.Context, cfg StorageConfig) (file.Storage, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "local":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "/files/"
		}
		storage, err := file.NewLocalStorage(cfg.Dir, baseURL, file.WithLocalWriteTimeout(cfg.WriteTimeout))
		if err != nil {
			return nil, err
		}
		return storage, nil
	case "s3":
		storage, err := file.NewS3Storage(ctx, file.S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			Endpoint:       cfg.S3Endpoint,
			BaseURL:        cfg.BaseURL,
			ForcePathStyle: cfg.S3ForcePathStyle,
		}, file.WithS3WriteTimeout(cfg.WriteTimeout))
		if err != nil {
			return nil, err
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, cfg.Driver)
	}
}

// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for dotenv files:
//
//	type App struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		DSN      string `env:"DATABASE_URL"`
//	}
//
//	var cfg App
//	if err := config.Load(&cfg, config.WithPrefix("ENGINEKIT_")); err != nil {
//		return err
//	}
//
// Without WithEnvFiles the optional .env in the working directory is read once.
// Load caches per type and prefix; Parse always reads the environment again.
// ResetCache clears the cache, mostly for tests.
package config

// Package pg opens pgx connection pools and classifies common PostgreSQL errors.
//
//	var cfg pg.Config
//	if err := config.Load(&cfg, config.WithPrefix("ENGINEKIT_")); err != nil {
//		return err
//	}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
// Connect retries with a linearly growing pause and honors ctx cancellation.
// Healthcheck wraps any Pinger into a readiness probe. The Is*Error helpers
// match pgx sentinels and SQLSTATE codes.
package pg

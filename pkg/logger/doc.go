// Package logger builds *slog.Logger instances from functional options and
// provides attribute constructors so keys stay consistent across commands.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "enginekit"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextValue("command", commandKey{}),
//	)
//	log.InfoContext(ctx, "table grouped", logger.Field("category"), logger.Rows(n))
//
// Output defaults to JSON on stderr at info level. Registered ContextExtractor
// callbacks run on each record, so command scoped values show up without being
// passed around explicitly.
package logger

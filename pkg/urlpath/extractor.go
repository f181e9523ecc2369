package urlpath

import (
	"context"
	"log/slog"
)

// LoggerExtractor adds the stored path to log records as "url_path".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if path := FromContext(ctx); path != "" {
			return slog.String("url_path", path), true
		}
		return slog.Attr{}, false
	}
}

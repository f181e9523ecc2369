package urlpath

import "context"

type contextKey struct{}

// WithContext stores an already sanitized path in ctx.
func WithContext(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, contextKey{}, path)
}

// FromContext returns the path stored by Middleware, or "" when absent.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	path, _ := ctx.Value(contextKey{}).(string)
	return path
}

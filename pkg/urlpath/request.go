package urlpath

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/menuworks/enginekit/pkg/sanitizer"
)

const (
	// WildcardParam is the chi catch-all parameter name, as in r.Get("/*", h).
	WildcardParam = "*"
	// QueryParam carries the path when the router has no wildcard match.
	QueryParam = "go"
)

// FromRequest returns the sanitized content path of r: the chi wildcard
// segment when the route has one, otherwise the "go" query parameter.
// Both missing yields "".
func FromRequest(r *http.Request) string {
	raw := chi.URLParam(r, WildcardParam)
	if raw == "" {
		raw = r.URL.Query().Get(QueryParam)
	}
	return sanitizer.URLPath(raw)
}

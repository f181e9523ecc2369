package urlpath

import "net/http"

// Middleware resolves the request's content path once and stores it in the
// request context for FromContext. Mount it inside the chi route group that
// declares the wildcard, otherwise only the query parameter is seen.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), FromRequest(r))))
	})
}

// Package urlpath extracts the content path of a request for routing by slug.
//
// The raw path comes from the chi catch-all parameter or, failing that, the
// "go" query parameter, and is passed through sanitizer.URLPath: lowercased,
// reduced to [a-z0-9/_-] and stripped of trailing slashes.
//
//	r := chi.NewRouter()
//	r.With(urlpath.Middleware).Get("/*", func(w http.ResponseWriter, r *http.Request) {
//		page := urlpath.FromContext(r.Context()) // "menu/soups"
//		...
//	})
package urlpath

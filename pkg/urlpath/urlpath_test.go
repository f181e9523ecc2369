package urlpath_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuworks/enginekit/pkg/logger"
	"github.com/menuworks/enginekit/pkg/urlpath"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "query parameter", target: "/?go=Menu/Soups/", want: "menu/soups"},
		{name: "filters unsafe bytes", target: "/?go=" + "menu%2F%3Cscript%3E%2Fborshch", want: "menu/script/borshch"},
		{name: "missing", target: "/", want: ""},
		{name: "only slashes", target: "/?go=///", want: ""},
		{name: "zero is a path", target: "/?go=0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.want, urlpath.FromRequest(req))
		})
	}
}

func TestMiddleware_ChiWildcard(t *testing.T) {
	t.Parallel()

	var got string
	r := chi.NewRouter()
	r.With(urlpath.Middleware).Get("/*", func(w http.ResponseWriter, r *http.Request) {
		got = urlpath.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		target string
		want   string
	}{
		{target: "/Menu/Soups/", want: "menu/soups"},
		{target: "/menu/borshch_2024?go=ignored", want: "menu/borshch_2024"},
		{target: "/?go=Drinks/Tea", want: "drinks/tea"},
		{target: "/", want: ""},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, tt.want, got, tt.target)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	assert.Empty(t, urlpath.FromContext(context.Background()))
	assert.Equal(t, "menu", urlpath.FromContext(urlpath.WithContext(context.Background(), "menu")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(urlpath.LoggerExtractor()))

	log.InfoContext(urlpath.WithContext(context.Background(), "menu/soups"), "page")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "menu/soups", entry["url_path"])

	buf.Reset()
	log.InfoContext(context.Background(), "page")
	entry = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "url_path")
}

package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/r7.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("\x89PNG"))
		case "/page.html":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	st := NewLocal(dir, "/images")
	ctx := context.Background()

	res, err := Mirror(ctx, srv.Client(), st, "ryzen-7", srv.URL+"/r7.png")
	require.NoError(t, err)
	assert.Equal(t, "/images/ryzen-7.png", res.URL)
	b, err := os.ReadFile(filepath.Join(dir, "ryzen-7.png"))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(b))

	_, err = Mirror(ctx, srv.Client(), st, "x", srv.URL+"/page.html")
	assert.ErrorContains(t, err, "not an image")

	_, err = Mirror(ctx, srv.Client(), st, "x", srv.URL+"/missing.png")
	assert.ErrorContains(t, err, "404")
}

package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	seohttp "github.com/TravisXO/CanonicalSeoAuditor/http"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns page HTML and headers", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Write([]byte("<html><head><title>Test</title></head><body></body></html>"))
		}))
		defer srv.Close()

		f := seohttp.NewFetcher()
		defer f.Close()

		page, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Contains(t, page.HTML, "<title>Test</title>")
		assert.Equal(t, "nosniff", page.Headers["X-Content-Type-Options"])
		assert.False(t, page.IsHTTPS)
		assert.GreaterOrEqual(t, page.LoadTime, 0.0)
	})

	t.Run("sends bot user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Write([]byte("<html></html>"))
		}))
		defer srv.Close()

		f := seohttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "Mozilla/5.0 (compatible; SeoAuditorBot/1.0)", gotUA)
	})

	t.Run("follows redirects and keeps the final URL", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html></html>"))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		f := seohttp.NewFetcher()
		defer f.Close()

		page, err := f.Fetch(context.Background(), srv.URL+"/old")
		require.NoError(t, err)
		assert.Equal(t, srv.URL+"/new", page.URL)
	})

	t.Run("errors on non-2xx status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := seohttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, seoaudit.ENOTFOUND, seoaudit.ErrorCode(err))
	})

	t.Run("rejects empty URL", func(t *testing.T) {
		t.Parallel()

		f := seohttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "  ")
		require.Error(t, err)
		assert.Equal(t, seoaudit.EINVALID, seoaudit.ErrorCode(err))
	})

	t.Run("copies prober findings onto the page", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html></html>"))
		}))
		defer srv.Close()

		prober := proberFunc(func(ctx context.Context, pageURL string) (bool, bool) {
			return true, true
		})

		f := seohttp.NewFetcher(seohttp.WithProber(prober))
		defer f.Close()

		page, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.True(t, page.RobotsTxtDetected)
		assert.True(t, page.SitemapDetected)
	})
}

type proberFunc func(ctx context.Context, pageURL string) (bool, bool)

func (f proberFunc) Probe(ctx context.Context, pageURL string) (bool, bool) {
	return f(ctx, pageURL)
}

package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	seohttp "github.com/TravisXO/CanonicalSeoAuditor/http"
)

func TestProber_Probe(t *testing.T) {
	t.Parallel()

	t.Run("detects robots.txt and a valid sitemap", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("User-agent: *\nAllow: /"))
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/</loc></url>
</urlset>`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		p := seohttp.NewProber()
		robots, sitemap := p.Probe(context.Background(), srv.URL+"/some/page")
		assert.True(t, robots)
		assert.True(t, sitemap)
	})

	t.Run("accepts sitemap index files", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<?xml version="1.0"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>https://example.com/sitemap-1.xml</loc></sitemap>
</sitemapindex>`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		p := seohttp.NewProber()
		_, sitemap := p.Probe(context.Background(), srv.URL)
		assert.True(t, sitemap)
	})

	t.Run("rejects sitemap that is not XML", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html><body>404 page pretending to be 200</body>"))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		p := seohttp.NewProber()
		robots, sitemap := p.Probe(context.Background(), srv.URL)
		assert.False(t, robots)
		assert.False(t, sitemap)
	})

	t.Run("missing artifacts report false", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		p := seohttp.NewProber()
		robots, sitemap := p.Probe(context.Background(), srv.URL)
		assert.False(t, robots)
		assert.False(t, sitemap)
	})

	t.Run("relative URL reports nothing", func(t *testing.T) {
		t.Parallel()

		p := seohttp.NewProber()
		robots, sitemap := p.Probe(context.Background(), "/just/a/path")
		assert.False(t, robots)
		assert.False(t, sitemap)
	})
}

// Package http provides the HTTP fetch collaborator: it retrieves a
// page's raw HTML together with the response metadata the audit's
// security and performance checks consume.
package http

import (
	"context"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// userAgent identifies the auditor to sites that block anonymous bots.
const userAgent = "Mozilla/5.0 (compatible; SeoAuditorBot/1.0)"

// Ensure Fetcher implements seoaudit.Fetcher at compile time.
var _ seoaudit.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages using plain HTTP requests. It does not
// execute JavaScript; the audit analyzes served markup only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	prober  seoaudit.CrawlProber
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithProber attaches a crawlability prober whose robots.txt and
// sitemap findings are copied onto every fetched page.
func WithProber(p seoaudit.CrawlProber) Option {
	return func(f *Fetcher) {
		f.prober = p
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at the given URL. URLs without a scheme
// default to https. Non-2xx responses are errors: the audit is only
// meaningful over a page that was actually served.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*seoaudit.Page, error) {
	if strings.TrimSpace(url) == "" {
		return nil, seoaudit.Errorf(seoaudit.EINVALID, "URL cannot be empty.")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, seoaudit.Errorf(seoaudit.EINVALID, "invalid URL: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, seoaudit.Errorf(seoaudit.ENOTFOUND,
			"Failed to crawl %s. Status Code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	loadTime := math.Round(time.Since(start).Seconds()*100) / 100

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	headers := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}

	page := &seoaudit.Page{
		URL:      finalURL,
		HTML:     string(body),
		Headers:  headers,
		IsHTTPS:  strings.HasPrefix(strings.ToLower(finalURL), "https"),
		LoadTime: loadTime,
		SizeKB:   int64(len(body) / 1024),
	}

	if f.prober != nil {
		page.RobotsTxtDetected, page.SitemapDetected = f.prober.Probe(ctx, finalURL)
	}

	return page, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

package seoaudit

import "context"

// Page is a fetched web page as delivered by a Fetcher. It is the sole
// input to an audit and is treated as immutable for its duration.
type Page struct {
	// URL is the final URL the page was fetched from.
	URL string

	// HTML is the raw document body, treated as UTF-8 text.
	HTML string

	// Headers holds the response headers relevant to the security
	// checks (Strict-Transport-Security, X-Content-Type-Options,
	// X-Frame-Options). Keys are canonical header names.
	Headers map[string]string

	// IsHTTPS reports whether the page was served over HTTPS.
	IsHTTPS bool

	// LoadTime is the observed fetch duration in seconds, rounded to
	// two decimals. Zero means not measured.
	LoadTime float64

	// SizeKB is the response body size in kilobytes.
	SizeKB int64

	// RobotsTxtDetected and SitemapDetected are filled by an optional
	// crawlability probe; both default to false.
	RobotsTxtDetected bool
	SitemapDetected   bool
}

// Fetcher retrieves pages for auditing.
type Fetcher interface {
	// Fetch performs a GET request and returns the page with its
	// response metadata. Non-2xx responses are errors.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// CrawlProber checks robots.txt and sitemap.xml reachability for a
// page's host. Implementations must not fail the audit: probe errors
// surface as "not detected".
type CrawlProber interface {
	Probe(ctx context.Context, pageURL string) (robotsTxt, sitemap bool)
}

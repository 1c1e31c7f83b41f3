package mock

import (
	"context"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

var _ seoaudit.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of seoaudit.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*seoaudit.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*seoaudit.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ seoaudit.CrawlProber = (*CrawlProber)(nil)

// CrawlProber is a mock implementation of seoaudit.CrawlProber.
type CrawlProber struct {
	ProbeFn func(ctx context.Context, pageURL string) (bool, bool)
}

func (p *CrawlProber) Probe(ctx context.Context, pageURL string) (robotsTxt, sitemap bool) {
	return p.ProbeFn(ctx, pageURL)
}

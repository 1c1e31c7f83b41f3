// Package batch audits many URLs concurrently with deduplication and
// per-domain rate limiting.
package batch

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/sync/errgroup"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/TravisXO/CanonicalSeoAuditor/bloom"
)

// DefaultConcurrency is the default number of concurrent audits.
const DefaultConcurrency = 4

// DefaultRPS is the default per-domain request rate.
const DefaultRPS = 2.0

// Outcome is the result of auditing one URL in a batch.
type Outcome struct {
	URL    string
	Result *seoaudit.AuditResult
	Err    error
}

// Runner fetches and audits a set of URLs concurrently.
type Runner struct {
	fetcher seoaudit.Fetcher
	auditor seoaudit.Auditor
	store   seoaudit.AuditStore

	concurrency int
	limiter     *DomainLimiter
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency sets the number of concurrent audits.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithRPS sets the per-domain request rate.
func WithRPS(rps float64) Option {
	return func(r *Runner) {
		if rps > 0 {
			r.limiter = NewDomainLimiter(rps)
		}
	}
}

// WithStore persists each successful audit as it completes.
func WithStore(store seoaudit.AuditStore) Option {
	return func(r *Runner) {
		r.store = store
	}
}

// NewRunner creates a new Runner.
func NewRunner(fetcher seoaudit.Fetcher, auditor seoaudit.Auditor, opts ...Option) *Runner {
	r := &Runner{
		fetcher:     fetcher,
		auditor:     auditor,
		concurrency: DefaultConcurrency,
		limiter:     NewDomainLimiter(DefaultRPS),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run audits every distinct URL in urls and returns one outcome per
// audited URL, in input order. Duplicate URLs are audited once. A
// failed fetch records an error outcome for that URL without stopping
// the rest of the batch; Run itself fails only on context
// cancellation.
func (r *Runner) Run(ctx context.Context, urls []string) ([]*Outcome, error) {
	seen := bloom.NewFilter(uint(len(urls))+1, 0.001)
	var distinct []string
	for _, u := range urls {
		if !seen.Seen(u) {
			distinct = append(distinct, u)
		}
	}

	outcomes := make([]*Outcome, len(distinct))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, u := range distinct {
		g.Go(func() error {
			outcome := r.auditOne(ctx, u)
			if outcome.Err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
			mu.Lock()
			outcomes[i] = outcome
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (r *Runner) auditOne(ctx context.Context, pageURL string) *Outcome {
	outcome := &Outcome{URL: pageURL}

	if err := r.limiter.Wait(ctx, domainOf(pageURL)); err != nil {
		outcome.Err = err
		return outcome
	}

	page, err := r.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Result = r.auditor.Audit(ctx, page)

	if r.store != nil && outcome.Result.Success {
		outcome.Err = r.store.SaveAudit(ctx, &seoaudit.AuditRecord{
			URL:    outcome.Result.URL,
			Result: outcome.Result,
		})
	}

	return outcome
}

// domainOf extracts the host for rate limiting. Unparseable URLs
// share a single bucket.
func domainOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Host
}

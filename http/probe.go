package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/beevik/etree"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// DefaultProbeTimeout bounds each robots.txt and sitemap request.
const DefaultProbeTimeout = 5 * time.Second

// maxSitemapSize caps how much sitemap XML the prober will read.
const maxSitemapSize = 10 << 20 // 10MB

// Ensure Prober implements seoaudit.CrawlProber at compile time.
var _ seoaudit.CrawlProber = (*Prober)(nil)

// Prober checks a site's crawlability surface: whether robots.txt is
// served and whether a parseable sitemap.xml exists at the site root.
type Prober struct {
	client *http.Client
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithProbeTimeout sets the timeout for probe requests.
func WithProbeTimeout(d time.Duration) ProberOption {
	return func(p *Prober) {
		p.client.Timeout = d
	}
}

// NewProber creates a new Prober.
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		client: &http.Client{Timeout: DefaultProbeTimeout},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe reports whether the site serving pageURL has a robots.txt and
// a valid sitemap.xml. Probe never fails: any error on either request
// simply reports that artifact as absent.
func (p *Prober) Probe(ctx context.Context, pageURL string) (robotsTxt, sitemap bool) {
	base, err := siteRoot(pageURL)
	if err != nil {
		return false, false
	}
	return p.hasRobotsTxt(ctx, base), p.hasSitemap(ctx, base)
}

func (p *Prober) hasRobotsTxt(ctx context.Context, base string) bool {
	resp, err := p.get(ctx, base+"/robots.txt")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

func (p *Prober) hasSitemap(ctx context.Context, base string) bool {
	resp, err := p.get(ctx, base+"/sitemap.xml")
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSitemapSize))
	if err != nil {
		return false
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return false
	}

	root := doc.Root()
	if root == nil {
		return false
	}
	// Accept both plain sitemaps and sitemap index files.
	return root.Tag == "urlset" || root.Tag == "sitemapindex"
}

func (p *Prober) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return p.client.Do(req)
}

// siteRoot reduces a page URL to its scheme://host origin.
func siteRoot(pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", seoaudit.Errorf(seoaudit.EINVALID, "URL must be absolute: %q", pageURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

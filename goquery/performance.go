package goquery

import (
	"fmt"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/PuerkitoBio/goquery"
)

const (
	maxResourceCount  = 50
	maxRenderBlocking = 5
	maxPageSizeKB     = 512
	maxLoadTime       = 2.5
)

// extractPerformance counts resources referenced by the page and
// evaluates them together with the fetch collaborator's load-time and
// page-size measurements.
func extractPerformance(d *Document, page *seoaudit.Page, r *seoaudit.AuditResult) {
	facts := collectLinkFacts(d)
	r.CSSFileCount = facts.stylesheets
	r.JSFileCount = d.Find("script[src]").Length()
	r.TotalResourceCount = r.CSSFileCount + r.JSFileCount + d.Find("img").Length()

	// Stylesheets and synchronous head scripts block first paint.
	blocking := facts.stylesheets
	d.Find("head script[src]").Each(func(_ int, s *goquery.Selection) {
		if _, async := s.Attr("async"); async {
			return
		}
		if _, deferred := s.Attr("defer"); deferred {
			return
		}
		blocking++
	})
	r.RenderBlocking = blocking

	r.PageSizeKB = page.SizeKB
	if r.PageSizeKB == 0 {
		r.PageSizeKB = int64(d.RawSize() / 1024)
	}
	r.LoadTime = page.LoadTime

	if r.TotalResourceCount > maxResourceCount {
		addSignal(r, seoaudit.CategoryPerformance, SignalResourceCount,
			fmt.Sprintf("%d", r.TotalResourceCount), seoaudit.StatusWarning, "Too Many Requests")
	} else {
		addSignal(r, seoaudit.CategoryPerformance, SignalResourceCount,
			fmt.Sprintf("%d", r.TotalResourceCount), seoaudit.StatusGood, "")
	}

	if blocking > maxRenderBlocking {
		addSignal(r, seoaudit.CategoryPerformance, SignalRenderBlocking,
			fmt.Sprintf("%d", blocking), seoaudit.StatusWarning, "Render Blocking")
	} else {
		addSignal(r, seoaudit.CategoryPerformance, SignalRenderBlocking,
			fmt.Sprintf("%d", blocking), seoaudit.StatusGood, "")
	}

	if r.PageSizeKB > maxPageSizeKB {
		addSignal(r, seoaudit.CategoryPerformance, SignalPageSize,
			fmt.Sprintf("%dKB", r.PageSizeKB), seoaudit.StatusWarning, "Too Large")
	} else {
		addSignal(r, seoaudit.CategoryPerformance, SignalPageSize,
			fmt.Sprintf("%dKB", r.PageSizeKB), seoaudit.StatusGood, "")
	}

	switch {
	case r.LoadTime == 0:
		addSignal(r, seoaudit.CategoryPerformance, SignalLoadTime, "", seoaudit.StatusInfo, "Not Measured")
	case r.LoadTime > maxLoadTime:
		addSignal(r, seoaudit.CategoryPerformance, SignalLoadTime,
			fmt.Sprintf("%.2fs", r.LoadTime), seoaudit.StatusWarning, "Too Slow")
	default:
		addSignal(r, seoaudit.CategoryPerformance, SignalLoadTime,
			fmt.Sprintf("%.2fs", r.LoadTime), seoaudit.StatusGood, "")
	}
}

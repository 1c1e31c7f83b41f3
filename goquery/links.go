package goquery

import (
	"fmt"
	"strings"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/PuerkitoBio/goquery"
)

// extractLinks classifies anchors as internal or external and counts
// nofollow and missing-anchor-text links. A link is internal when its
// href starts with "/", shares the page URL as prefix, or lacks an
// http scheme entirely.
func extractLinks(d *Document, pageURL string, r *seoaudit.AuditResult) {
	d.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		rel := strings.ToLower(s.AttrOr("rel", ""))

		if strings.TrimSpace(s.Text()) == "" && s.Find("img").Length() == 0 {
			r.LinksWithoutAnchor++
		}
		if strings.Contains(rel, "nofollow") {
			r.NoFollowLinks++
		}

		if strings.HasPrefix(href, "/") || strings.HasPrefix(href, pageURL) || !strings.HasPrefix(href, "http") {
			r.InternalLinks++
		} else {
			r.ExternalLinks++
		}
	})

	if r.ExternalLinks > 0 {
		r.InternalToExternal = round2(float64(r.InternalLinks) / float64(r.ExternalLinks))
	} else {
		r.InternalToExternal = float64(r.InternalLinks)
	}

	if r.LinksWithoutAnchor > 0 {
		addSignal(r, seoaudit.CategoryLinks, SignalAnchorText,
			fmt.Sprintf("%d missing", r.LinksWithoutAnchor), seoaudit.StatusWarning, "Missing Anchor Text")
	} else {
		addSignal(r, seoaudit.CategoryLinks, SignalAnchorText, "all present", seoaudit.StatusGood, "")
	}

	total := r.InternalLinks + r.ExternalLinks
	if total == 0 {
		addSignal(r, seoaudit.CategoryLinks, SignalLinkBalance, "0", seoaudit.StatusInfo, "No Links")
	} else {
		addSignal(r, seoaudit.CategoryLinks, SignalLinkBalance,
			fmt.Sprintf("%d internal / %d external", r.InternalLinks, r.ExternalLinks),
			seoaudit.StatusGood, "")
	}
}

package goquery

import (
	"fmt"
	"strconv"
	"strings"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/PuerkitoBio/goquery"
)

const (
	maxInlineStyles = 10
	maxDOMNodes     = 1500
)

var deprecatedTags = []string{
	"center", "font", "marquee", "blink", "frame", "frameset", "big", "strike", "tt",
}

// extractMarkup evaluates deprecated tags, flash embeds, inline style
// use and DOM size as one code-quality signal.
func extractMarkup(d *Document, r *seoaudit.AuditResult) {
	for _, tag := range deprecatedTags {
		r.DeprecatedTagCount += d.Find(tag).Length()
	}

	d.Find("embed, object").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if isFlash(s) {
			r.HasFlash = true
			return false
		}
		return true
	})

	r.InlineStyleCount = d.Find("[style]").Length()
	r.DOMNodeCount = d.NodeCount()

	switch {
	case r.DeprecatedTagCount > 0 || r.HasFlash:
		addSignal(r, seoaudit.CategoryMarkup, SignalDeprecated,
			fmt.Sprintf("%d deprecated tags", r.DeprecatedTagCount), seoaudit.StatusCritical, "Deprecated Markup")
	case r.InlineStyleCount > maxInlineStyles || r.DOMNodeCount > maxDOMNodes:
		addSignal(r, seoaudit.CategoryMarkup, SignalDeprecated,
			fmt.Sprintf("%d inline styles, %d nodes", r.InlineStyleCount, r.DOMNodeCount),
			seoaudit.StatusWarning, "Bloated Markup")
	default:
		addSignal(r, seoaudit.CategoryMarkup, SignalDeprecated, "clean", seoaudit.StatusGood, "")
	}
}

func isFlash(s *goquery.Selection) bool {
	mime := strings.ToLower(s.AttrOr("type", ""))
	src := strings.ToLower(s.AttrOr("src", s.AttrOr("data", "")))
	_, hasClassID := s.Attr("classid")
	return strings.Contains(mime, "shockwave-flash") || strings.HasSuffix(src, ".swf") || hasClassID
}

// extractAccessibility evaluates landmarks, skip links and tabindex
// use. A missing main landmark or any positive tabindex degrades
// keyboard navigation.
func extractAccessibility(d *Document, r *seoaudit.AuditResult) {
	r.HasMainLandmark = d.Find("main, [role='main']").Length() > 0
	r.HasNavLandmark = d.Find("nav, [role='navigation']").Length() > 0
	r.HasFooterLandmark = d.Find("footer, [role='contentinfo']").Length() > 0

	d.Find("body a[href]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= 5 {
			return false
		}
		if strings.HasPrefix(s.AttrOr("href", ""), "#") {
			r.HasSkipLink = true
			return false
		}
		return true
	})

	d.Find("[tabindex]").Each(func(_ int, s *goquery.Selection) {
		if v, err := strconv.Atoi(strings.TrimSpace(s.AttrOr("tabindex", ""))); err == nil && v > 0 {
			r.PositiveTabIndex++
		}
	})

	if !r.HasMainLandmark || r.PositiveTabIndex > 0 {
		addSignal(r, seoaudit.CategoryAccessibility, SignalAccessibility,
			fmt.Sprintf("main=%t tabindex=%d", r.HasMainLandmark, r.PositiveTabIndex),
			seoaudit.StatusWarning, "Navigation Issues")
	} else {
		addSignal(r, seoaudit.CategoryAccessibility, SignalAccessibility, "ok", seoaudit.StatusGood, "")
	}
}

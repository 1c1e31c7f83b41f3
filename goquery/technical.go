package goquery

import (
	"fmt"
	"strings"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/PuerkitoBio/goquery"
)

// linkFacts gathers everything the technical and performance
// extractors need from <link> tags in one pass.
type linkFacts struct {
	canonical   string
	hreflangs   []string
	favicon     string
	preconnects int
	stylesheets int
	hasAmp      bool
	hasRSS      bool
}

func collectLinkFacts(d *Document) linkFacts {
	var facts linkFacts
	d.Find("link").Each(func(_ int, s *goquery.Selection) {
		rel := strings.ToLower(strings.TrimSpace(s.AttrOr("rel", "")))
		href := strings.TrimSpace(s.AttrOr("href", ""))

		switch {
		case rel == "canonical":
			if facts.canonical == "" {
				facts.canonical = href
			}
		case rel == "stylesheet":
			facts.stylesheets++
		case rel == "preconnect":
			facts.preconnects++
		case rel == "amphtml":
			facts.hasAmp = true
		case rel == "alternate":
			if hreflang, ok := s.Attr("hreflang"); ok {
				facts.hreflangs = append(facts.hreflangs, strings.ToLower(strings.TrimSpace(hreflang)))
			}
			linkType := strings.ToLower(s.AttrOr("type", ""))
			if strings.Contains(linkType, "rss") || strings.Contains(linkType, "atom") {
				facts.hasRSS = true
			}
		case strings.Contains(rel, "icon"):
			if facts.favicon == "" {
				facts.favicon = href
			}
		}
	})
	return facts
}

// extractTechnical evaluates canonical, hreflang, favicon, preconnect,
// RSS and AMP signals against the page URL.
func extractTechnical(d *Document, pageURL string, r *seoaudit.AuditResult) {
	facts := collectLinkFacts(d)

	r.URLLength = len(pageURL)
	r.CanonicalLink = facts.canonical
	if facts.canonical == "" {
		addSignal(r, seoaudit.CategoryTechnical, SignalCanonical, "", seoaudit.StatusCritical, "Missing")
	} else {
		r.IsCanonicalCorrect = canonicalMatches(pageURL, facts.canonical)
		if r.IsCanonicalCorrect {
			addSignal(r, seoaudit.CategoryTechnical, SignalCanonical, facts.canonical, seoaudit.StatusGood, "")
		} else {
			addSignal(r, seoaudit.CategoryTechnical, SignalCanonical, facts.canonical, seoaudit.StatusWarning, "Mismatch")
		}
	}

	r.HreflangCount = len(facts.hreflangs)
	for _, h := range facts.hreflangs {
		if h == "x-default" {
			r.HasXDefault = true
		}
	}
	if r.HreflangCount == 0 {
		addSignal(r, seoaudit.CategoryTechnical, SignalHreflang, "0", seoaudit.StatusInfo, "None")
	} else {
		addSignal(r, seoaudit.CategoryTechnical, SignalHreflang,
			fmt.Sprintf("%d", r.HreflangCount), seoaudit.StatusGood, "")
	}

	r.FaviconURL = facts.favicon
	if facts.favicon == "" {
		addSignal(r, seoaudit.CategoryTechnical, SignalFavicon, "", seoaudit.StatusWarning, "Missing")
	} else {
		addSignal(r, seoaudit.CategoryTechnical, SignalFavicon, facts.favicon, seoaudit.StatusGood, "")
	}

	r.PreconnectCount = facts.preconnects
	if facts.preconnects == 0 {
		addSignal(r, seoaudit.CategoryTechnical, SignalPreconnect, "0", seoaudit.StatusInfo, "None")
	} else {
		addSignal(r, seoaudit.CategoryTechnical, SignalPreconnect,
			fmt.Sprintf("%d", facts.preconnects), seoaudit.StatusGood, "")
	}

	r.HasRSSLink = facts.hasRSS
	if facts.hasRSS {
		addSignal(r, seoaudit.CategoryTechnical, SignalRSS, "present", seoaudit.StatusGood, "")
	} else {
		addSignal(r, seoaudit.CategoryTechnical, SignalRSS, "", seoaudit.StatusWarning, "Missing")
	}

	r.HasAmpLink = facts.hasAmp
	if facts.hasAmp {
		addSignal(r, seoaudit.CategoryTechnical, SignalAMP, "present", seoaudit.StatusGood, "")
	} else {
		addSignal(r, seoaudit.CategoryTechnical, SignalAMP, "", seoaudit.StatusInfo, "None")
	}
}

// canonicalMatches reports whether the page URL contains the canonical
// value, ignoring trailing slashes on both sides.
func canonicalMatches(pageURL, canonical string) bool {
	c := strings.TrimSuffix(canonical, "/")
	u := strings.TrimSuffix(pageURL, "/")
	if c == "" {
		return false
	}
	return u == c || strings.Contains(u, c)
}

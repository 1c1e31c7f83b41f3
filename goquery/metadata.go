package goquery

import (
	"strings"
	"unicode/utf8"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// Title length bounds in characters.
const (
	titleMinLength = 30
	titleMaxLength = 60

	descriptionMinLength = 70
	descriptionMaxLength = 160
)

// extractMetadata evaluates the title, meta description, robots,
// viewport, charset and lang signals.
func extractMetadata(d *Document, r *seoaudit.AuditResult) {
	extractTitle(d, r)
	extractDescription(d, r)
	extractRobots(d, r)

	if _, ok := d.MetaContent("viewport"); ok {
		r.HasViewport = true
		addSignal(r, seoaudit.CategoryMetadata, SignalViewport, "present", seoaudit.StatusGood, "")
	} else {
		addSignal(r, seoaudit.CategoryMetadata, SignalViewport, "", seoaudit.StatusCritical, "Missing")
	}

	r.Charset = d.Charset()
	if r.Charset == "" {
		addSignal(r, seoaudit.CategoryMetadata, SignalCharset, "", seoaudit.StatusCritical, "Missing")
	} else {
		addSignal(r, seoaudit.CategoryMetadata, SignalCharset, r.Charset, seoaudit.StatusGood, "")
	}

	if lang, ok := d.Find("html").Attr("lang"); ok && strings.TrimSpace(lang) != "" {
		r.LangAttribute = strings.TrimSpace(lang)
		addSignal(r, seoaudit.CategoryMetadata, SignalLangAttribute, r.LangAttribute, seoaudit.StatusGood, "")
	} else {
		addSignal(r, seoaudit.CategoryMetadata, SignalLangAttribute, "", seoaudit.StatusWarning, "Missing")
	}

	_, r.HasMetaKeywords = d.MetaContent("keywords")
}

func extractTitle(d *Document, r *seoaudit.AuditResult) {
	titles := d.Find("title")
	if titles.Length() == 0 {
		addSignal(r, seoaudit.CategoryMetadata, SignalTitle, "", seoaudit.StatusCritical, "Missing")
		return
	}

	title := strings.TrimSpace(titles.First().Text())
	r.Title = title
	r.TitleLength = utf8.RuneCountInString(title)

	switch {
	case title == "":
		addSignal(r, seoaudit.CategoryMetadata, SignalTitle, "", seoaudit.StatusCritical, "Empty")
	case titles.Length() > 1:
		addSignal(r, seoaudit.CategoryMetadata, SignalTitle, title, seoaudit.StatusWarning, "Multiple")
	case strings.Contains(strings.ToLower(title), "untitled"):
		addSignal(r, seoaudit.CategoryMetadata, SignalTitle, title, seoaudit.StatusWarning, "Placeholder")
	case r.TitleLength < titleMinLength:
		addSignal(r, seoaudit.CategoryMetadata, SignalTitle, title, seoaudit.StatusWarning, "Too Short")
	case r.TitleLength > titleMaxLength:
		addSignal(r, seoaudit.CategoryMetadata, SignalTitle, title, seoaudit.StatusWarning, "Too Long")
	default:
		addSignal(r, seoaudit.CategoryMetadata, SignalTitle, title, seoaudit.StatusGood, "")
	}
}

func extractDescription(d *Document, r *seoaudit.AuditResult) {
	desc, ok := d.MetaContent("description")
	if !ok {
		addSignal(r, seoaudit.CategoryMetadata, SignalMetaDescription, "", seoaudit.StatusCritical, "Missing")
		return
	}

	r.MetaDescription = desc
	r.MetaDescLength = utf8.RuneCountInString(desc)

	switch {
	case desc == "":
		addSignal(r, seoaudit.CategoryMetadata, SignalMetaDescription, "", seoaudit.StatusCritical, "Empty")
	case r.MetaDescLength < descriptionMinLength:
		addSignal(r, seoaudit.CategoryMetadata, SignalMetaDescription, desc, seoaudit.StatusWarning, "Too Short")
	case r.MetaDescLength > descriptionMaxLength:
		addSignal(r, seoaudit.CategoryMetadata, SignalMetaDescription, desc, seoaudit.StatusWarning, "Too Long")
	default:
		addSignal(r, seoaudit.CategoryMetadata, SignalMetaDescription, desc, seoaudit.StatusGood, "")
	}
}

func extractRobots(d *Document, r *seoaudit.AuditResult) {
	robots, ok := d.MetaContent("robots")
	if !ok {
		r.MetaRobots = "None"
		addSignal(r, seoaudit.CategoryMetadata, SignalMetaRobots, "", seoaudit.StatusGood, "Default")
		return
	}

	r.MetaRobots = robots
	if strings.Contains(strings.ToLower(robots), "noindex") {
		r.MetaNoIndex = true
		addSignal(r, seoaudit.CategoryMetadata, SignalMetaRobots, robots, seoaudit.StatusCritical, "NoIndex")
		return
	}
	addSignal(r, seoaudit.CategoryMetadata, SignalMetaRobots, robots, seoaudit.StatusGood, "")
}

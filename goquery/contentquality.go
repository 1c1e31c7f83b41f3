package goquery

import (
	"fmt"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// Reading-ease below this is considered hard to read for a general
// audience.
const minReadingEase = 30.0

// extractContentQuality runs the readability and keyword analysis over
// the visible text and collects authorship metadata.
func extractContentQuality(d *Document, text string, r *seoaudit.AuditResult) {
	r.KeywordDensity = seoaudit.KeywordDensity(text)
	r.ReadingEase = seoaudit.ReadingEase(text)
	r.AvgSentenceLength = seoaudit.AverageSentenceLength(text)

	switch {
	case seoaudit.CountWords(text) == 0:
		addSignal(r, seoaudit.CategoryContentQuality, SignalReadingEase, "", seoaudit.StatusInfo, "No Text")
	case r.ReadingEase < minReadingEase:
		addSignal(r, seoaudit.CategoryContentQuality, SignalReadingEase,
			fmt.Sprintf("%.1f", r.ReadingEase), seoaudit.StatusWarning, "Difficult")
	default:
		addSignal(r, seoaudit.CategoryContentQuality, SignalReadingEase,
			fmt.Sprintf("%.1f", r.ReadingEase), seoaudit.StatusGood, "")
	}

	r.Author, _ = d.MetaContent("author")
	r.PublishedDate, _ = d.MetaProperty("article:published_time")
	r.ModifiedDate, _ = d.MetaProperty("article:modified_time")

	if r.Author != "" || r.PublishedDate != "" {
		addSignal(r, seoaudit.CategoryContentQuality, SignalAuthorship, r.Author, seoaudit.StatusGood, "")
	} else {
		addSignal(r, seoaudit.CategoryContentQuality, SignalAuthorship, "", seoaudit.StatusInfo, "Missing")
	}
}

package goquery

import (
	"context"
	"fmt"
	"time"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// Ensure Auditor implements seoaudit.Auditor at compile time.
var _ seoaudit.Auditor = (*Auditor)(nil)

// Auditor sequences the full audit pipeline over one fetched page:
// parse, extract every category's signals, analyze readability, score
// and generate recommendations.
type Auditor struct {
	now func() time.Time
}

// Option configures an Auditor.
type Option func(*Auditor)

// WithClock overrides the timestamp source. Used by tests to make
// results fully deterministic.
func WithClock(now func() time.Time) Option {
	return func(a *Auditor) {
		a.now = now
	}
}

// NewAuditor creates a new Auditor.
func NewAuditor(opts ...Option) *Auditor {
	a := &Auditor{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Audit analyzes the page and returns a complete result. It never
// returns nil and never panics: an unexpected failure anywhere in the
// pipeline is recovered here and surfaced as Success=false. Absent
// nodes are valid input for every extractor, not errors.
func (a *Auditor) Audit(ctx context.Context, page *seoaudit.Page) (result *seoaudit.AuditResult) {
	result = &seoaudit.AuditResult{
		URL:       page.URL,
		AuditedAt: a.now().UTC(),
	}

	defer func() {
		if rec := recover(); rec != nil {
			result.Success = false
			result.ErrorMessage = fmt.Sprintf("An error occurred: %v", rec)
		}
	}()

	if err := ctx.Err(); err != nil {
		result.ErrorMessage = err.Error()
		return result
	}

	doc := Parse(page.HTML)
	text := doc.VisibleText()

	extractMetadata(doc, result)
	extractContent(doc, text, result)
	extractImages(doc, result)
	extractSocial(doc, result)
	extractTechnical(doc, page.URL, result)
	extractLinks(doc, page.URL, result)
	extractPerformance(doc, page, result)
	extractSecurity(page, result)
	extractMedia(doc, result)
	extractForms(doc, result)
	extractMarkup(doc, result)
	extractAccessibility(doc, result)
	extractContentQuality(doc, text, result)
	extractStructuredData(doc, result)

	result.RobotsTxtDetected = page.RobotsTxtDetected
	result.SitemapDetected = page.SitemapDetected

	result.CategoryScores = seoaudit.CategoryScores(result.Signals)
	result.OverallScore = seoaudit.OverallScore(result.Signals)
	result.Grade = seoaudit.GradeFor(result.OverallScore)
	result.Recommendations = seoaudit.GenerateRecommendations(result)

	result.Success = true
	return result
}

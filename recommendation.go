package seoaudit

import (
	"fmt"
	"sort"
)

// Priority ranks a recommendation's urgency. Higher values sort first.
type Priority int

// Recommendation priorities.
const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// String returns the display name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// RecommendationCategory groups recommendations for display.
type RecommendationCategory string

// Recommendation categories.
const (
	RecMetaTags     RecommendationCategory = "MetaTags"
	RecContent      RecommendationCategory = "Content"
	RecPerformance  RecommendationCategory = "Performance"
	RecSecurity     RecommendationCategory = "Security"
	RecLinks        RecommendationCategory = "Links"
	RecCrawlability RecommendationCategory = "Crawlability"
	RecMobile       RecommendationCategory = "Mobile"
	RecAdvanced     RecommendationCategory = "Advanced"
)

// Recommendation is one prioritized, actionable remediation item.
// Created once during generation and never mutated afterward.
type Recommendation struct {
	Category         RecommendationCategory `json:"category"`
	Priority         Priority               `json:"priority"`
	Message          string                 `json:"message"`
	ActionableAdvice string                 `json:"actionableAdvice"`
	ImpactScore      int                    `json:"impactScore"`
}

// GenerateRecommendations evaluates the rule set against an assembled
// result. Each rule fires at most once per audit. The returned list is
// sorted by priority descending, ties broken by impact score
// descending.
func GenerateRecommendations(r *AuditResult) []Recommendation {
	var recs []Recommendation

	// Meta tags
	if r.Title == "" {
		recs = append(recs, Recommendation{
			Category:         RecMetaTags,
			Priority:         PriorityCritical,
			Message:          "Missing Title Tag",
			ActionableAdvice: "Add a descriptive <title> tag to the <head> section.",
			ImpactScore:      10,
		})
	} else if r.TitleLength < 30 || r.TitleLength > 60 {
		recs = append(recs, Recommendation{
			Category:         RecMetaTags,
			Priority:         PriorityMedium,
			Message:          fmt.Sprintf("Title length is %d characters (Recommended: 30-60)", r.TitleLength),
			ActionableAdvice: "Update page title to be between 30 and 60 characters.",
			ImpactScore:      5,
		})
	}

	if r.MetaDescription == "" {
		recs = append(recs, Recommendation{
			Category:         RecMetaTags,
			Priority:         PriorityHigh,
			Message:          "Missing Meta Description",
			ActionableAdvice: "Add a <meta name=\"description\"> tag summarizing the page content.",
			ImpactScore:      8,
		})
	}

	// Content
	if len(r.H1Tags) == 0 {
		recs = append(recs, Recommendation{
			Category:         RecContent,
			Priority:         PriorityHigh,
			Message:          "Missing H1 Heading",
			ActionableAdvice: "Ensure the page has exactly one <h1> tag describing the main topic.",
			ImpactScore:      10,
		})
	} else if len(r.H1Tags) > 1 {
		recs = append(recs, Recommendation{
			Category:         RecContent,
			Priority:         PriorityMedium,
			Message:          "Multiple H1 Tags Found",
			ActionableAdvice: "Use only one <h1> tag per page. Use <h2>-<h6> for subsections.",
			ImpactScore:      5,
		})
	}

	if r.ImagesMissingAlt > 0 {
		recs = append(recs, Recommendation{
			Category:         RecContent,
			Priority:         PriorityHigh,
			Message:          fmt.Sprintf("%d Images Missing Alt Text", r.ImagesMissingAlt),
			ActionableAdvice: "Add descriptive 'alt' attributes to all <img> tags for accessibility and SEO.",
			ImpactScore:      5,
		})
	}

	if r.WordCount < 300 {
		recs = append(recs, Recommendation{
			Category:         RecContent,
			Priority:         PriorityMedium,
			Message:          "Low Word Count",
			ActionableAdvice: "Consider adding more substantial content (at least 300 words).",
			ImpactScore:      5,
		})
	}

	// Performance
	if r.LoadTime > 2.5 {
		recs = append(recs, Recommendation{
			Category:         RecPerformance,
			Priority:         PriorityHigh,
			Message:          fmt.Sprintf("Slow Page Load: %.2fs", r.LoadTime),
			ActionableAdvice: "Optimize images, minify CSS/JS, and use caching to reduce load time below 2.5s.",
			ImpactScore:      8,
		})
	}

	if r.TotalResourceCount > 50 {
		recs = append(recs, Recommendation{
			Category:         RecPerformance,
			Priority:         PriorityMedium,
			Message:          fmt.Sprintf("High Request Count: %d", r.TotalResourceCount),
			ActionableAdvice: "Combine CSS/JS files and use sprites to reduce HTTP requests.",
			ImpactScore:      5,
		})
	}

	// Security
	if !r.IsHTTPS {
		recs = append(recs, Recommendation{
			Category:         RecSecurity,
			Priority:         PriorityCritical,
			Message:          "Not Using HTTPS",
			ActionableAdvice: "Install an SSL certificate and redirect all traffic to HTTPS.",
			ImpactScore:      10,
		})
	}

	// Links
	if r.LinksWithoutAnchor > 0 {
		recs = append(recs, Recommendation{
			Category:         RecLinks,
			Priority:         PriorityMedium,
			Message:          fmt.Sprintf("%d Links Missing Anchor Text", r.LinksWithoutAnchor),
			ActionableAdvice: "Ensure all <a> tags have descriptive text inside them.",
			ImpactScore:      3,
		})
	}

	// Crawlability
	if r.CanonicalLink == "" {
		recs = append(recs, Recommendation{
			Category:         RecCrawlability,
			Priority:         PriorityMedium,
			Message:          "Missing Canonical Tag",
			ActionableAdvice: "Add a <link rel=\"canonical\"> tag to prevent duplicate content issues.",
			ImpactScore:      5,
		})
	}

	if r.MetaNoIndex {
		recs = append(recs, Recommendation{
			Category:         RecCrawlability,
			Priority:         PriorityHigh,
			Message:          "Page is NoIndexed",
			ActionableAdvice: "Remove 'noindex' from meta robots if you want this page to appear in search results.",
			ImpactScore:      10,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return recs[i].Priority > recs[j].Priority
		}
		return recs[i].ImpactScore > recs[j].ImpactScore
	})
	return recs
}

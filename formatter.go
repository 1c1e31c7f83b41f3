package seoaudit

import (
	"fmt"
	"strings"
)

// FormatResult renders an audit result as a plain-text report.
func FormatResult(r *AuditResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "SEO Audit: %s\n", r.URL)
	if !r.Success {
		fmt.Fprintf(&sb, "Audit failed: %s\n", r.ErrorMessage)
		return sb.String()
	}

	fmt.Fprintf(&sb, "Overall Score: %d/100 (Grade %s)\n\n", r.OverallScore, r.Grade)

	sb.WriteString("Category Scores:\n")
	for _, c := range Categories() {
		fmt.Fprintf(&sb, "  %-20s %3d\n", formatCategory(c), r.CategoryScores[c])
	}

	if len(r.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&sb, "  [%s] %s\n", rec.Priority, rec.Message)
			fmt.Fprintf(&sb, "      %s\n", rec.ActionableAdvice)
		}
	}

	return sb.String()
}

// FormatRecords renders stored audits as a one-line-per-audit listing.
func FormatRecords(records []*AuditRecord) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, rec := range records {
		parts = append(parts, fmt.Sprintf("%s  %3d %s  %s",
			rec.ID, rec.Score, rec.Grade, rec.URL))
	}
	return strings.Join(parts, "\n")
}

func formatCategory(c Category) string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

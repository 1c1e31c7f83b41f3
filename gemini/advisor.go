// Package gemini implements the Advisor interface using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

const model = "gemini-2.5-flash"

// Ensure Advisor implements seoaudit.Advisor at compile time.
var _ seoaudit.Advisor = (*Advisor)(nil)

// Advisor turns a stored audit into a prose remediation plan.
type Advisor struct {
	client *genai.Client
}

// NewAdvisor creates a new Advisor.
func NewAdvisor(client *genai.Client) *Advisor {
	return &Advisor{client: client}
}

// Explain summarizes the audit's findings and recommendations as a
// prioritized remediation plan.
func (a *Advisor) Explain(ctx context.Context, record *seoaudit.AuditRecord) (string, error) {
	if record == nil || record.Result == nil {
		return "", seoaudit.Errorf(seoaudit.EINVALID, "audit record required")
	}

	prompt := BuildUserPrompt(record)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", seoaudit.Errorf(seoaudit.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an SEO consultant. Given the results of a technical SEO audit, explain the findings in plain language and produce a prioritized remediation plan. Base your advice only on the audit data provided.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the audit summary.
func BuildUserPrompt(record *seoaudit.AuditRecord) string {
	r := record.Result

	var sb strings.Builder
	sb.WriteString("<audit>\n")
	fmt.Fprintf(&sb, "<url>%s</url>\n", record.URL)
	fmt.Fprintf(&sb, "<score>%d</score>\n", r.OverallScore)
	fmt.Fprintf(&sb, "<grade>%s</grade>\n", r.Grade)

	sb.WriteString("<category-scores>\n")
	for _, category := range seoaudit.Categories() {
		fmt.Fprintf(&sb, "<category name=%q score=\"%d\"/>\n", category, r.CategoryScores[category])
	}
	sb.WriteString("</category-scores>\n")

	sb.WriteString("<findings>\n")
	for _, signal := range r.Signals {
		if signal.Status == seoaudit.StatusGood {
			continue
		}
		fmt.Fprintf(&sb, "<finding category=%q name=%q status=%q>%s</finding>\n",
			signal.Category, signal.Name, signal.Status, signal.Detail)
	}
	sb.WriteString("</findings>\n")

	sb.WriteString("<recommendations>\n")
	for i, rec := range r.Recommendations {
		fmt.Fprintf(&sb, "<recommendation index=\"%d\" priority=%q impact=\"%d\">%s: %s</recommendation>\n",
			i+1, rec.Priority, rec.ImpactScore, rec.Message, rec.ActionableAdvice)
	}
	sb.WriteString("</recommendations>\n")
	sb.WriteString("</audit>\n\n")
	sb.WriteString("Explain these findings and produce a prioritized remediation plan.")
	return sb.String()
}

package goquery_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/TravisXO/CanonicalSeoAuditor/goquery"
)

func TestExtractContentQuality(t *testing.T) {
	t.Parallel()

	t.Run("page without text reports info", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, "<html><body></body></html>")
		signal := findSignal(t, result, goquery.SignalReadingEase)
		assert.Equal(t, seoaudit.StatusInfo, signal.Status)
		assert.Equal(t, "No Text", signal.Detail)
		assert.Empty(t, result.KeywordDensity)
	})

	t.Run("plain prose scores as readable", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, "<html><body><p>"+strings.Repeat("The cat sat on the mat. ", 10)+"</p></body></html>")
		assert.GreaterOrEqual(t, result.ReadingEase, 30.0)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalReadingEase))
		assert.InDelta(t, 5.45, result.AvgSentenceLength, 0.001)
	})

	t.Run("dense polysyllabic prose warns", func(t *testing.T) {
		t.Parallel()
		text := strings.Repeat("incomprehensibility characterization institutionalization ", 10) + "."
		result := auditHTML(t, "<html><body><p>"+text+"</p></body></html>")
		assert.Less(t, result.ReadingEase, 30.0)
		signal := findSignal(t, result, goquery.SignalReadingEase)
		assert.Equal(t, seoaudit.StatusWarning, signal.Status)
		assert.Equal(t, "Difficult", signal.Detail)
	})

	t.Run("keyword density reflects the dominant terms", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><body><p>
			tomato tomato tomato garden garden in a pot
		</p></body></html>`)
		assert.Contains(t, result.KeywordDensity, "tomato")
		assert.Contains(t, result.KeywordDensity, "garden")
		assert.Greater(t, result.KeywordDensity["tomato"], result.KeywordDensity["garden"])
	})

	t.Run("authorship metadata is collected", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><head>
			<meta name="author" content="Sam Editor">
			<meta property="article:published_time" content="2024-01-15T08:00:00Z">
			<meta property="article:modified_time" content="2024-02-01T09:00:00Z">
		</head></html>`)
		assert.Equal(t, "Sam Editor", result.Author)
		assert.Equal(t, "2024-01-15T08:00:00Z", result.PublishedDate)
		assert.Equal(t, "2024-02-01T09:00:00Z", result.ModifiedDate)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalAuthorship))
	})

	t.Run("missing authorship is informational", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, "<html><body><p>anonymous words</p></body></html>")
		assert.Equal(t, seoaudit.StatusInfo, result.StatusOf(goquery.SignalAuthorship))
	})
}

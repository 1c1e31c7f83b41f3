package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/TravisXO/CanonicalSeoAuditor/goquery"
)

func TestExtractTechnical_Canonical(t *testing.T) {
	t.Parallel()

	t.Run("missing canonical is critical", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, "<html><head></head></html>")
		signal := findSignal(t, result, goquery.SignalCanonical)
		assert.Equal(t, seoaudit.StatusCritical, signal.Status)
		assert.Equal(t, "Missing", signal.Detail)
		assert.Empty(t, result.CanonicalLink)

		_, ok := findRecommendation(result.Recommendations, "Missing Canonical Tag")
		assert.True(t, ok)
	})

	t.Run("trailing slashes are ignored when matching", func(t *testing.T) {
		t.Parallel()
		result := auditPage(t, &seoaudit.Page{
			URL:  "https://example.com/page/",
			HTML: `<html><head><link rel="canonical" href="https://example.com/page"></head></html>`,
		})
		assert.True(t, result.IsCanonicalCorrect)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalCanonical))
	})

	t.Run("canonical pointing elsewhere warns", func(t *testing.T) {
		t.Parallel()
		result := auditPage(t, &seoaudit.Page{
			URL:  "https://example.com/page",
			HTML: `<html><head><link rel="canonical" href="https://example.com/other"></head></html>`,
		})
		assert.False(t, result.IsCanonicalCorrect)
		signal := findSignal(t, result, goquery.SignalCanonical)
		assert.Equal(t, seoaudit.StatusWarning, signal.Status)
		assert.Equal(t, "Mismatch", signal.Detail)
		assert.Equal(t, "https://example.com/other", result.CanonicalLink)
	})

	t.Run("first canonical wins when repeated", func(t *testing.T) {
		t.Parallel()
		result := auditPage(t, &seoaudit.Page{
			URL: "https://example.com/page",
			HTML: `<html><head>
				<link rel="canonical" href="https://example.com/page">
				<link rel="canonical" href="https://example.com/dup">
			</head></html>`,
		})
		assert.Equal(t, "https://example.com/page", result.CanonicalLink)
		assert.True(t, result.IsCanonicalCorrect)
	})
}

func TestExtractTechnical(t *testing.T) {
	t.Parallel()

	t.Run("hreflang alternates with x-default", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><head>
			<link rel="alternate" hreflang="en" href="/en">
			<link rel="alternate" hreflang="de" href="/de">
			<link rel="alternate" hreflang="X-Default" href="/">
		</head></html>`)
		assert.Equal(t, 3, result.HreflangCount)
		assert.True(t, result.HasXDefault)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalHreflang))
	})

	t.Run("no hreflang is informational", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, "<html><head></head></html>")
		signal := findSignal(t, result, goquery.SignalHreflang)
		assert.Equal(t, seoaudit.StatusInfo, signal.Status)
		assert.Equal(t, "None", signal.Detail)
	})

	t.Run("favicon variants are recognized", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><head>
			<link rel="shortcut icon" href="/favicon.ico">
		</head></html>`)
		assert.Equal(t, "/favicon.ico", result.FaviconURL)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalFavicon))
	})

	t.Run("missing favicon warns", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, "<html><head></head></html>")
		assert.Equal(t, seoaudit.StatusWarning, result.StatusOf(goquery.SignalFavicon))
	})

	t.Run("preconnect hints are counted", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><head>
			<link rel="preconnect" href="https://fonts.example.com">
			<link rel="preconnect" href="https://cdn.example.com">
		</head></html>`)
		assert.Equal(t, 2, result.PreconnectCount)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalPreconnect))
	})

	t.Run("rss feed link is good", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><head>
			<link rel="alternate" type="application/rss+xml" href="/feed.xml">
		</head></html>`)
		assert.True(t, result.HasRSSLink)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalRSS))
	})

	t.Run("missing rss warns while missing amp is informational", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, "<html><head></head></html>")
		assert.Equal(t, seoaudit.StatusWarning, result.StatusOf(goquery.SignalRSS))
		assert.Equal(t, seoaudit.StatusInfo, result.StatusOf(goquery.SignalAMP))
	})

	t.Run("amp variant is recorded", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><head>
			<link rel="amphtml" href="https://example.com/amp/page">
		</head></html>`)
		assert.True(t, result.HasAmpLink)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalAMP))
	})

	t.Run("url length is recorded", func(t *testing.T) {
		t.Parallel()
		result := auditPage(t, &seoaudit.Page{URL: "https://example.com/p", HTML: ""})
		assert.Equal(t, len("https://example.com/p"), result.URLLength)
	})
}

package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/TravisXO/CanonicalSeoAuditor/goquery"
)

func TestExtractSocial(t *testing.T) {
	t.Parallel()

	t.Run("complete open graph markup is good", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><head>
			<meta property="og:title" content="Share Title">
			<meta property="og:description" content="Share description.">
			<meta property="og:type" content="article">
			<meta property="og:image" content="https://example.com/share.png">
		</head></html>`)
		assert.Equal(t, "Share Title", result.OgTitle)
		assert.Equal(t, "Share description.", result.OgDescription)
		assert.Equal(t, "article", result.OgType)
		assert.Equal(t, "https://example.com/share.png", result.OgImage)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalOgTitle))
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalOgImage))
	})

	t.Run("missing og image is the only critical social signal", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, "<html><head></head></html>")
		assert.Equal(t, seoaudit.StatusCritical, result.StatusOf(goquery.SignalOgImage))
		assert.Equal(t, seoaudit.StatusWarning, result.StatusOf(goquery.SignalOgTitle))
		assert.Equal(t, seoaudit.StatusWarning, result.StatusOf(goquery.SignalOgDescription))
		assert.Equal(t, seoaudit.StatusWarning, result.StatusOf(goquery.SignalOgType))
	})

	t.Run("twitter card recorded when present", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><head>
			<meta name="twitter:card" content="summary_large_image">
		</head></html>`)
		assert.Equal(t, "summary_large_image", result.TwitterCard)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalTwitterCard))
	})

	t.Run("absent twitter card defaults to none", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, "<html><head></head></html>")
		assert.Equal(t, "None", result.TwitterCard)
		assert.Equal(t, seoaudit.StatusWarning, result.StatusOf(goquery.SignalTwitterCard))
	})

	t.Run("facebook meta is informational when absent", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, "<html><head></head></html>")
		signal := findSignal(t, result, goquery.SignalFacebookMeta)
		assert.Equal(t, seoaudit.StatusInfo, signal.Status)
		assert.Equal(t, "Missing", signal.Detail)
	})

	t.Run("fb app id satisfies the facebook signal", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><head>
			<meta property="fb:app_id" content="123456">
		</head></html>`)
		assert.Equal(t, "123456", result.FbAppID)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalFacebookMeta))
	})
}

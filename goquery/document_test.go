package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TravisXO/CanonicalSeoAuditor/goquery"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("never fails on malformed input", func(t *testing.T) {
		t.Parallel()
		d := goquery.Parse("<<<not html>>><div")
		assert.NotNil(t, d)
	})

	t.Run("empty input yields an empty document", func(t *testing.T) {
		t.Parallel()
		d := goquery.Parse("")
		assert.Equal(t, 0, d.Find("div").Length())
		assert.Equal(t, 0, d.RawSize())
	})

	t.Run("records raw size", func(t *testing.T) {
		t.Parallel()
		html := "<html><body><p>hi</p></body></html>"
		d := goquery.Parse(html)
		assert.Equal(t, len(html), d.RawSize())
	})
}

func TestDocument_VisibleText(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()
		d := goquery.Parse("<html><body><p>hello\n\n   world</p></body></html>")
		assert.Equal(t, "hello world", d.VisibleText())
	})

	t.Run("skips script style and embedded documents", func(t *testing.T) {
		t.Parallel()
		d := goquery.Parse(`<html><body>
			<p>visible</p>
			<script>var hidden = 1;</script>
			<style>.hidden { color: red }</style>
			<noscript>also hidden</noscript>
			<svg><text>vector</text></svg>
		</body></html>`)
		text := d.VisibleText()
		assert.Equal(t, "visible", text)
	})

	t.Run("empty body yields empty text", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", goquery.Parse("<html><body></body></html>").VisibleText())
	})

	t.Run("does not mutate the document", func(t *testing.T) {
		t.Parallel()
		d := goquery.Parse("<html><body><p>a</p><script>x()</script></body></html>")
		_ = d.VisibleText()
		assert.Equal(t, 1, d.Find("script").Length())
	})
}

func TestDocument_MetaContent(t *testing.T) {
	t.Parallel()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		t.Parallel()
		d := goquery.Parse(`<html><head><meta name="Description" content="hello"></head></html>`)
		content, ok := d.MetaContent("description")
		assert.True(t, ok)
		assert.Equal(t, "hello", content)
	})

	t.Run("absent meta reports not found", func(t *testing.T) {
		t.Parallel()
		d := goquery.Parse(`<html><head></head></html>`)
		_, ok := d.MetaContent("description")
		assert.False(t, ok)
	})

	t.Run("property attribute is separate from name", func(t *testing.T) {
		t.Parallel()
		d := goquery.Parse(`<html><head><meta property="og:title" content="Social"></head></html>`)
		_, byName := d.MetaContent("og:title")
		assert.False(t, byName)
		content, byProp := d.MetaProperty("og:title")
		assert.True(t, byProp)
		assert.Equal(t, "Social", content)
	})
}

func TestDocument_Charset(t *testing.T) {
	t.Parallel()

	t.Run("meta charset attribute", func(t *testing.T) {
		t.Parallel()
		d := goquery.Parse(`<html><head><meta charset="utf-8"></head></html>`)
		assert.Equal(t, "utf-8", d.Charset())
	})

	t.Run("http-equiv content-type", func(t *testing.T) {
		t.Parallel()
		d := goquery.Parse(`<html><head><meta http-equiv="Content-Type" content="text/html; charset=iso-8859-1"></head></html>`)
		assert.Equal(t, "iso-8859-1", d.Charset())
	})

	t.Run("absent charset", func(t *testing.T) {
		t.Parallel()
		d := goquery.Parse(`<html><head></head></html>`)
		assert.Equal(t, "", d.Charset())
	})
}

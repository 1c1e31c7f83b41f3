package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/TravisXO/CanonicalSeoAuditor/goquery"
)

func TestExtractImages(t *testing.T) {
	t.Parallel()

	imageSignals := []string{
		goquery.SignalImageAlt,
		goquery.SignalImageDimensions,
		goquery.SignalImageFilenames,
		goquery.SignalImageLazyLoad,
		goquery.SignalImageFormats,
		goquery.SignalImageResponsive,
	}

	t.Run("page without images reports info only", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, "<html><body><p>text only</p></body></html>")
		assert.Zero(t, result.ImageCount)
		for _, name := range imageSignals {
			signal := findSignal(t, result, name)
			assert.Equal(t, seoaudit.StatusInfo, signal.Status, name)
			assert.Equal(t, "No Images", signal.Detail, name)
		}
	})

	t.Run("missing alt text is counted with sources", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><body>
			<img src="/one.png" width="1" height="1">
			<img src="/two.png" alt="described" width="1" height="1">
			<img alt="" width="1" height="1">
		</body></html>`)
		assert.Equal(t, 3, result.ImageCount)
		assert.Equal(t, 2, result.ImagesMissingAlt)
		assert.Equal(t, []string{"/one.png", "unknown"}, result.ImagesMissingAltURLs)
		signal := findSignal(t, result, goquery.SignalImageAlt)
		assert.Equal(t, seoaudit.StatusWarning, signal.Status)
		assert.Equal(t, "2 missing", signal.Value)
	})

	t.Run("missing dimensions are critical", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><body>
			<img src="/a.png" alt="a" width="10">
			<img src="/b.png" alt="b">
		</body></html>`)
		assert.Equal(t, 2, result.ImagesMissingDimension)
		signal := findSignal(t, result, goquery.SignalImageDimensions)
		assert.Equal(t, seoaudit.StatusCritical, signal.Status)
		assert.Equal(t, "Missing Dimensions", signal.Detail)
	})

	t.Run("generic filenames warn", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><body>
			<img src="/img0042.png" alt="a" width="1" height="1">
			<img src="/my_photo.jpg" alt="b" width="1" height="1">
			<img src="/garden-tomatoes.jpg" alt="c" width="1" height="1">
		</body></html>`)
		assert.Equal(t, 2, result.ImagesGenericFilename)
		assert.Equal(t, seoaudit.StatusWarning, result.StatusOf(goquery.SignalImageFilenames))
	})

	t.Run("lazy loading and modern formats are good", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><body>
			<img src="/hero.webp" alt="hero" loading="lazy" width="1" height="1">
		</body></html>`)
		assert.Equal(t, 1, result.ImagesLazyLoaded)
		assert.Equal(t, 1, result.ImagesModernFormat)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalImageLazyLoad))
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalImageFormats))
	})

	t.Run("eager legacy images warn", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><body>
			<img src="/hero.jpeg" alt="hero" width="1" height="1">
		</body></html>`)
		assert.Equal(t, seoaudit.StatusWarning, result.StatusOf(goquery.SignalImageLazyLoad))
		assert.Equal(t, seoaudit.StatusWarning, result.StatusOf(goquery.SignalImageFormats))
		assert.Equal(t, seoaudit.StatusWarning, result.StatusOf(goquery.SignalImageResponsive))
	})

	t.Run("srcset marks the page responsive", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><body>
			<img src="/a.jpg" srcset="/a-2x.jpg 2x" alt="a" width="1" height="1">
		</body></html>`)
		assert.True(t, result.HasResponsiveImages)
		assert.Equal(t, seoaudit.StatusGood, result.StatusOf(goquery.SignalImageResponsive))
	})

	t.Run("picture element marks the page responsive", func(t *testing.T) {
		t.Parallel()
		result := auditHTML(t, `<html><body>
			<picture><img src="/a.jpg" alt="a" width="1" height="1"></picture>
		</body></html>`)
		assert.True(t, result.HasResponsiveImages)
	})
}

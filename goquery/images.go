package goquery

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/PuerkitoBio/goquery"
)

var genericFilenameRe = regexp.MustCompile(`img\d+`)

// extractImages evaluates alt text, dimensions, filenames, loading and
// format signals. A page without images reports every image signal as
// Info rather than scoring them.
func extractImages(d *Document, r *seoaudit.AuditResult) {
	imgs := d.Find("img")
	r.ImageCount = imgs.Length()

	if r.ImageCount == 0 {
		for _, name := range []string{
			SignalImageAlt, SignalImageDimensions, SignalImageFilenames,
			SignalImageLazyLoad, SignalImageFormats, SignalImageResponsive,
		} {
			addSignal(r, seoaudit.CategoryImages, name, "", seoaudit.StatusInfo, "No Images")
		}
		return
	}

	missingDimensions := 0
	hasSrcset := false
	imgs.Each(func(_ int, s *goquery.Selection) {
		src := strings.TrimSpace(s.AttrOr("src", ""))

		if strings.TrimSpace(s.AttrOr("alt", "")) == "" {
			r.ImagesMissingAlt++
			if src == "" {
				src = "unknown"
			}
			r.ImagesMissingAltURLs = append(r.ImagesMissingAltURLs, src)
		}

		if _, ok := s.Attr("width"); !ok {
			missingDimensions++
		} else if _, ok := s.Attr("height"); !ok {
			missingDimensions++
		}

		base := strings.ToLower(path.Base(src))
		if genericFilenameRe.MatchString(base) || strings.Contains(base, "_") {
			r.ImagesGenericFilename++
		}

		if strings.EqualFold(s.AttrOr("loading", ""), "lazy") {
			r.ImagesLazyLoaded++
		}

		srcset := strings.TrimSpace(s.AttrOr("srcset", ""))
		if srcset != "" {
			hasSrcset = true
		}
		combined := strings.ToLower(src + " " + srcset)
		if strings.Contains(combined, ".webp") || strings.Contains(combined, ".avif") {
			r.ImagesModernFormat++
		}
	})
	r.ImagesMissingDimension = missingDimensions
	r.HasResponsiveImages = hasSrcset || d.Find("picture").Length() > 0

	if r.ImagesMissingAlt > 0 {
		addSignal(r, seoaudit.CategoryImages, SignalImageAlt,
			fmt.Sprintf("%d missing", r.ImagesMissingAlt), seoaudit.StatusWarning, "Missing Alt Text")
	} else {
		addSignal(r, seoaudit.CategoryImages, SignalImageAlt, "all present", seoaudit.StatusGood, "")
	}

	if missingDimensions > 0 {
		addSignal(r, seoaudit.CategoryImages, SignalImageDimensions,
			fmt.Sprintf("%d missing", missingDimensions), seoaudit.StatusCritical, "Missing Dimensions")
	} else {
		addSignal(r, seoaudit.CategoryImages, SignalImageDimensions, "all present", seoaudit.StatusGood, "")
	}

	if r.ImagesGenericFilename > 0 {
		addSignal(r, seoaudit.CategoryImages, SignalImageFilenames,
			fmt.Sprintf("%d generic", r.ImagesGenericFilename), seoaudit.StatusWarning, "Generic Filenames")
	} else {
		addSignal(r, seoaudit.CategoryImages, SignalImageFilenames, "descriptive", seoaudit.StatusGood, "")
	}

	if r.ImagesLazyLoaded > 0 {
		addSignal(r, seoaudit.CategoryImages, SignalImageLazyLoad,
			fmt.Sprintf("%d lazy", r.ImagesLazyLoaded), seoaudit.StatusGood, "")
	} else {
		addSignal(r, seoaudit.CategoryImages, SignalImageLazyLoad, "none", seoaudit.StatusWarning, "Not Used")
	}

	if r.ImagesModernFormat > 0 {
		addSignal(r, seoaudit.CategoryImages, SignalImageFormats,
			fmt.Sprintf("%d modern", r.ImagesModernFormat), seoaudit.StatusGood, "")
	} else {
		addSignal(r, seoaudit.CategoryImages, SignalImageFormats, "legacy only", seoaudit.StatusWarning, "No Modern Formats")
	}

	if r.HasResponsiveImages {
		addSignal(r, seoaudit.CategoryImages, SignalImageResponsive, "present", seoaudit.StatusGood, "")
	} else {
		addSignal(r, seoaudit.CategoryImages, SignalImageResponsive, "none", seoaudit.StatusWarning, "Not Responsive")
	}
}

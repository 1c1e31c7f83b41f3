package goquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/PuerkitoBio/goquery"
)

const (
	h1MinLength = 20
	h1MaxLength = 70

	minWordCount      = 300
	minTextRatio      = 10.0
	minParagraphShare = 50.0
)

// extractContent evaluates heading structure, list structure, word
// count and text ratios. The visible text is computed once by the
// orchestrator and shared with the content-quality extractor.
func extractContent(d *Document, text string, r *seoaudit.AuditResult) {
	extractHeadings(d, r)

	orphans := 0
	d.Find("li").Each(func(_ int, s *goquery.Selection) {
		parent := goquery.NodeName(s.Parent())
		if parent != "ul" && parent != "ol" {
			orphans++
		}
	})
	r.OrphanListItems = orphans
	if orphans > 0 {
		addSignal(r, seoaudit.CategoryContent, SignalListStructure,
			fmt.Sprintf("%d orphan list items", orphans), seoaudit.StatusWarning, "Orphan List Items")
	} else {
		addSignal(r, seoaudit.CategoryContent, SignalListStructure, "ok", seoaudit.StatusGood, "")
	}

	r.WordCount = seoaudit.CountWords(text)
	if r.WordCount < minWordCount {
		addSignal(r, seoaudit.CategoryContent, SignalWordCount,
			fmt.Sprintf("%d", r.WordCount), seoaudit.StatusWarning, "Too Low")
	} else {
		addSignal(r, seoaudit.CategoryContent, SignalWordCount,
			fmt.Sprintf("%d", r.WordCount), seoaudit.StatusGood, "")
	}

	if d.RawSize() > 0 {
		r.TextToHTMLRatio = round2(float64(len(text)) / float64(d.RawSize()) * 100)
	}
	if r.TextToHTMLRatio < minTextRatio {
		addSignal(r, seoaudit.CategoryContent, SignalTextRatio,
			fmt.Sprintf("%.2f%%", r.TextToHTMLRatio), seoaudit.StatusWarning, "Too Low")
	} else {
		addSignal(r, seoaudit.CategoryContent, SignalTextRatio,
			fmt.Sprintf("%.2f%%", r.TextToHTMLRatio), seoaudit.StatusGood, "")
	}

	paragraphChars := 0
	paragraphs := d.Find("p")
	paragraphs.Each(func(_ int, s *goquery.Selection) {
		paragraphChars += len(collapseWhitespace(s.Text()))
	})
	r.ParagraphCount = paragraphs.Length()
	if len(text) > 0 {
		r.ParagraphShare = round2(float64(paragraphChars) / float64(len(text)) * 100)
	}
	if r.ParagraphShare < minParagraphShare {
		addSignal(r, seoaudit.CategoryContent, SignalParagraphShare,
			fmt.Sprintf("%.2f%%", r.ParagraphShare), seoaudit.StatusWarning, "Too Low")
	} else {
		addSignal(r, seoaudit.CategoryContent, SignalParagraphShare,
			fmt.Sprintf("%.2f%%", r.ParagraphShare), seoaudit.StatusGood, "")
	}
}

func extractHeadings(d *Document, r *seoaudit.AuditResult) {
	d.Find("h1").Each(func(_ int, s *goquery.Selection) {
		r.H1Tags = append(r.H1Tags, strings.TrimSpace(s.Text()))
	})
	d.Find("h2").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			r.H2Tags = append(r.H2Tags, t)
		}
	})
	d.Find("h3").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			r.H3Tags = append(r.H3Tags, t)
		}
	})

	switch {
	case len(r.H1Tags) == 0:
		addSignal(r, seoaudit.CategoryContent, SignalH1, "0", seoaudit.StatusCritical, "Missing")
	case len(r.H1Tags) > 1:
		addSignal(r, seoaudit.CategoryContent, SignalH1,
			fmt.Sprintf("%d", len(r.H1Tags)), seoaudit.StatusCritical, "Multiple")
	default:
		length := utf8.RuneCountInString(r.H1Tags[0])
		if length < h1MinLength || length > h1MaxLength {
			addSignal(r, seoaudit.CategoryContent, SignalH1, r.H1Tags[0], seoaudit.StatusWarning, "Length")
		} else {
			addSignal(r, seoaudit.CategoryContent, SignalH1, r.H1Tags[0], seoaudit.StatusGood, "")
		}
	}

	// A heading that skips more than one level from its predecessor
	// breaks the document outline.
	prev := 0
	d.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		level := int(name[1] - '0')
		if prev > 0 && level > prev+1 {
			r.HeadingIssues = append(r.HeadingIssues,
				fmt.Sprintf("H%d follows H%d", level, prev))
		}
		prev = level
	})
	if len(r.HeadingIssues) > 0 {
		addSignal(r, seoaudit.CategoryContent, SignalHeadingOrder,
			strings.Join(r.HeadingIssues, "; "), seoaudit.StatusWarning, "Skipped Levels")
	} else {
		addSignal(r, seoaudit.CategoryContent, SignalHeadingOrder, "ok", seoaudit.StatusGood, "")
	}
}

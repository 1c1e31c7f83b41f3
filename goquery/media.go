package goquery

import (
	"fmt"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/PuerkitoBio/goquery"
)

// extractMedia evaluates video and audio elements. Pages without media
// report Info rather than scoring the signals.
func extractMedia(d *Document, r *seoaudit.AuditResult) {
	videos := d.Find("video")
	r.VideoCount = videos.Length()
	videos.Each(func(i int, s *goquery.Selection) {
		if s.Find("track").Length() == 0 {
			r.VideoIssues = append(r.VideoIssues,
				fmt.Sprintf("video %d has no captions track", i+1))
		}
	})
	addMediaSignal(r, SignalVideo, r.VideoCount, r.VideoIssues)

	audios := d.Find("audio")
	r.AudioCount = audios.Length()
	audios.Each(func(i int, s *goquery.Selection) {
		if _, ok := s.Attr("controls"); !ok {
			r.AudioIssues = append(r.AudioIssues,
				fmt.Sprintf("audio %d has no controls", i+1))
		}
	})
	addMediaSignal(r, SignalAudio, r.AudioCount, r.AudioIssues)
}

// extractForms evaluates form accessibility: every visible input needs
// an associated label.
func extractForms(d *Document, r *seoaudit.AuditResult) {
	forms := d.Find("form")
	r.FormCount = forms.Length()

	forms.Each(func(formIdx int, form *goquery.Selection) {
		form.Find("input, textarea, select").Each(func(_ int, field *goquery.Selection) {
			inputType := field.AttrOr("type", "")
			switch inputType {
			case "hidden", "submit", "button", "reset":
				return
			}
			if labelled(form, field) {
				return
			}
			name := field.AttrOr("name", field.AttrOr("id", "unnamed"))
			r.FormIssues = append(r.FormIssues,
				fmt.Sprintf("form %d field %q has no label", formIdx+1, name))
		})
	})

	addMediaSignal(r, SignalForms, r.FormCount, r.FormIssues)
}

// labelled reports whether the field has a label by id reference,
// aria-label, or enclosing <label>.
func labelled(form, field *goquery.Selection) bool {
	if aria := field.AttrOr("aria-label", ""); aria != "" {
		return true
	}
	if id, ok := field.Attr("id"); ok && id != "" {
		if form.Find(fmt.Sprintf("label[for=%q]", id)).Length() > 0 {
			return true
		}
	}
	return field.ParentsFiltered("label").Length() > 0
}

// addMediaSignal applies the shared count/issues status rule: no
// elements is Info, any issue is Warning, otherwise Good.
func addMediaSignal(r *seoaudit.AuditResult, name string, count int, issues []string) {
	category := seoaudit.CategoryMedia
	if name == SignalForms {
		category = seoaudit.CategoryForms
	}

	switch {
	case count == 0:
		addSignal(r, category, name, "0", seoaudit.StatusInfo, "None")
	case len(issues) > 0:
		addSignal(r, category, name,
			fmt.Sprintf("%d with %d issues", count, len(issues)), seoaudit.StatusWarning, "Issues Found")
	default:
		addSignal(r, category, name, fmt.Sprintf("%d", count), seoaudit.StatusGood, "")
	}
}

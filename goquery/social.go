package goquery

import seoaudit "github.com/TravisXO/CanonicalSeoAuditor"

// extractSocial evaluates Open Graph, Twitter card and Facebook
// markup. og:image is the only critical social signal: link previews
// degrade hardest without it.
func extractSocial(d *Document, r *seoaudit.AuditResult) {
	r.OgTitle = socialSignal(d, r, SignalOgTitle, "og:title", seoaudit.StatusWarning)
	r.OgDescription = socialSignal(d, r, SignalOgDescription, "og:description", seoaudit.StatusWarning)
	r.OgType = socialSignal(d, r, SignalOgType, "og:type", seoaudit.StatusWarning)
	r.OgImage = socialSignal(d, r, SignalOgImage, "og:image", seoaudit.StatusCritical)

	if card, ok := d.MetaContent("twitter:card"); ok && card != "" {
		r.TwitterCard = card
		addSignal(r, seoaudit.CategorySocial, SignalTwitterCard, card, seoaudit.StatusGood, "")
	} else {
		r.TwitterCard = "None"
		addSignal(r, seoaudit.CategorySocial, SignalTwitterCard, "", seoaudit.StatusWarning, "Missing")
	}

	appID, _ := d.MetaProperty("fb:app_id")
	publisher, _ := d.MetaProperty("article:publisher")
	r.FbAppID = appID
	r.FbPublisher = publisher
	if appID != "" || publisher != "" {
		addSignal(r, seoaudit.CategorySocial, SignalFacebookMeta, appID+publisher, seoaudit.StatusGood, "")
	} else {
		addSignal(r, seoaudit.CategorySocial, SignalFacebookMeta, "", seoaudit.StatusInfo, "Missing")
	}
}

// socialSignal reports one og:* property, using absentStatus when the
// property is missing or empty.
func socialSignal(d *Document, r *seoaudit.AuditResult, name, property string, absentStatus seoaudit.Status) string {
	content, ok := d.MetaProperty(property)
	if !ok || content == "" {
		addSignal(r, seoaudit.CategorySocial, name, "", absentStatus, "Missing")
		return ""
	}
	addSignal(r, seoaudit.CategorySocial, name, content, seoaudit.StatusGood, "")
	return content
}

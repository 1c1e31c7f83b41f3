package goquery

import seoaudit "github.com/TravisXO/CanonicalSeoAuditor"

// Signal names reported by the extractors. Exposed so callers can look
// up individual statuses on a result without duplicating strings.
const (
	SignalTitle           = "Title"
	SignalMetaDescription = "Meta Description"
	SignalMetaRobots      = "Meta Robots"
	SignalViewport        = "Viewport"
	SignalCharset         = "Charset"
	SignalLangAttribute   = "Lang Attribute"
	SignalH1              = "H1"
	SignalHeadingOrder    = "Heading Order"
	SignalListStructure   = "List Structure"
	SignalWordCount       = "Word Count"
	SignalTextRatio       = "Text To HTML Ratio"
	SignalParagraphShare  = "Paragraph Share"
	SignalImageAlt        = "Image Alt"
	SignalImageDimensions = "Image Dimensions"
	SignalImageFilenames  = "Image Filenames"
	SignalImageLazyLoad   = "Image Lazy Loading"
	SignalImageFormats    = "Image Formats"
	SignalImageResponsive = "Responsive Images"
	SignalOgTitle         = "OG Title"
	SignalOgDescription   = "OG Description"
	SignalOgType          = "OG Type"
	SignalOgImage         = "OG Image"
	SignalTwitterCard     = "Twitter Card"
	SignalFacebookMeta    = "Facebook Meta"
	SignalCanonical       = "Canonical"
	SignalHreflang        = "Hreflang"
	SignalFavicon         = "Favicon"
	SignalPreconnect      = "Preconnect"
	SignalRSS             = "RSS Feed"
	SignalAMP             = "AMP"
	SignalAnchorText      = "Anchor Text"
	SignalLinkBalance     = "Link Balance"
	SignalResourceCount   = "Resource Count"
	SignalRenderBlocking  = "Render Blocking"
	SignalPageSize        = "Page Size"
	SignalLoadTime        = "Load Time"
	SignalHTTPS           = "HTTPS"
	SignalVideo           = "Video"
	SignalAudio           = "Audio"
	SignalForms           = "Forms"
	SignalDeprecated      = "Deprecated Markup"
	SignalAccessibility   = "Landmarks"
	SignalReadingEase     = "Reading Ease"
	SignalAuthorship      = "Authorship"
	SignalStructuredData  = "Structured Data"
)

// addSignal appends one evaluated signal to the result.
func addSignal(r *seoaudit.AuditResult, category seoaudit.Category, name, value string, status seoaudit.Status, detail string) {
	r.Signals = append(r.Signals, seoaudit.Signal{
		Category: category,
		Name:     name,
		Value:    value,
		Status:   status,
		Detail:   detail,
	})
}

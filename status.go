package seoaudit

// Status is the qualitative severity of a single audit signal.
type Status string

// Signal statuses. Info and Unknown signals are reported but never
// counted toward category or overall scores.
const (
	StatusGood     Status = "good"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusInfo     Status = "info"
	StatusUnknown  Status = "unknown"
)

// Scored reports whether the status participates in score denominators.
func (s Status) Scored() bool {
	switch s {
	case StatusGood, StatusWarning, StatusCritical:
		return true
	}
	return false
}

// Category identifies one audited SEO dimension.
type Category string

// Audit categories, one per signal extractor.
const (
	CategoryMetadata       Category = "metadata"
	CategoryContent        Category = "content"
	CategoryImages         Category = "images"
	CategorySocial         Category = "social"
	CategoryTechnical      Category = "technical"
	CategoryLinks          Category = "links"
	CategoryPerformance    Category = "performance"
	CategorySecurity       Category = "security"
	CategoryMedia          Category = "media"
	CategoryForms          Category = "forms"
	CategoryMarkup         Category = "deprecated_markup"
	CategoryAccessibility  Category = "accessibility"
	CategoryContentQuality Category = "content_quality"
	CategoryStructuredData Category = "structured_data"
)

// Categories lists every audit category in report order.
func Categories() []Category {
	return []Category{
		CategoryMetadata,
		CategoryContent,
		CategoryImages,
		CategorySocial,
		CategoryTechnical,
		CategoryLinks,
		CategoryPerformance,
		CategorySecurity,
		CategoryMedia,
		CategoryForms,
		CategoryMarkup,
		CategoryAccessibility,
		CategoryContentQuality,
		CategoryStructuredData,
	}
}

// Signal is one extracted SEO-relevant fact paired with its status.
type Signal struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Value    string   `json:"value"`
	Status   Status   `json:"status"`

	// Detail qualifies the status for display, e.g. "Too Short" or
	// "Missing". Scoring never depends on it.
	Detail string `json:"detail,omitempty"`
}

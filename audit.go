package seoaudit

import (
	"context"
	"time"
)

// Auditor analyzes one fetched page and produces a complete result.
type Auditor interface {
	// Audit walks the page's HTML, extracts signals for every
	// category, scores them and generates recommendations. It never
	// returns a nil result: internal failures yield a result with
	// Success=false and ErrorMessage set.
	Audit(ctx context.Context, page *Page) *AuditResult
}

// AuditResult owns every fact, signal, score and recommendation
// produced by one audit. The orchestrator constructs it; once returned
// it is read-only to all consumers.
type AuditResult struct {
	URL       string    `json:"url"`
	AuditedAt time.Time `json:"auditedAt"`

	// Metadata
	Title             string `json:"title"`
	TitleLength       int    `json:"titleLength"`
	MetaDescription   string `json:"metaDescription"`
	MetaDescLength    int    `json:"metaDescriptionLength"`
	MetaRobots        string `json:"metaRobots"`
	MetaNoIndex       bool   `json:"metaNoIndex"`
	HasViewport       bool   `json:"hasViewport"`
	Charset           string `json:"charset"`
	LangAttribute     string `json:"langAttribute"`
	HasMetaKeywords   bool   `json:"hasMetaKeywords"`

	// Content
	WordCount       int      `json:"wordCount"`
	H1Tags          []string `json:"h1Tags"`
	H2Tags          []string `json:"h2Tags"`
	H3Tags          []string `json:"h3Tags"`
	HeadingIssues   []string `json:"headingIssues"`
	OrphanListItems int      `json:"orphanListItems"`
	ParagraphCount  int      `json:"paragraphCount"`
	TextToHTMLRatio float64  `json:"textToHtmlRatio"`
	ParagraphShare  float64  `json:"paragraphShare"`

	// Images
	ImageCount             int      `json:"imageCount"`
	ImagesMissingAlt       int      `json:"imagesMissingAlt"`
	ImagesMissingAltURLs   []string `json:"imagesMissingAltUrls"`
	ImagesMissingDimension int      `json:"imagesMissingDimensions"`
	ImagesModernFormat     int      `json:"imagesModernFormat"`
	ImagesLazyLoaded       int      `json:"imagesLazyLoaded"`
	ImagesGenericFilename  int      `json:"imagesGenericFilename"`
	HasResponsiveImages    bool     `json:"hasResponsiveImages"`

	// Social
	OgTitle        string `json:"ogTitle"`
	OgDescription  string `json:"ogDescription"`
	OgType         string `json:"ogType"`
	OgImage        string `json:"ogImage"`
	TwitterCard    string `json:"twitterCard"`
	FbAppID        string `json:"fbAppId"`
	FbPublisher    string `json:"fbPublisher"`

	// Technical
	CanonicalLink      string `json:"canonicalLink"`
	IsCanonicalCorrect bool   `json:"isCanonicalCorrect"`
	HreflangCount      int    `json:"hreflangCount"`
	HasXDefault        bool   `json:"hasXDefault"`
	FaviconURL         string `json:"faviconUrl"`
	PreconnectCount    int    `json:"preconnectCount"`
	HasAmpLink         bool   `json:"hasAmpLink"`
	HasRSSLink         bool   `json:"hasRssLink"`
	URLLength          int    `json:"urlLength"`
	RobotsTxtDetected  bool   `json:"robotsTxtDetected"`
	SitemapDetected    bool   `json:"sitemapDetected"`

	// Links
	InternalLinks       int      `json:"internalLinks"`
	ExternalLinks       int      `json:"externalLinks"`
	NoFollowLinks       int      `json:"noFollowLinks"`
	LinksWithoutAnchor  int      `json:"linksWithoutAnchor"`
	InternalToExternal  float64  `json:"internalToExternalRatio"`
	BrokenLinkURLs      []string `json:"brokenLinkUrls"`

	// Performance
	CSSFileCount       int     `json:"cssFileCount"`
	JSFileCount        int     `json:"jsFileCount"`
	TotalResourceCount int     `json:"totalResourceCount"`
	RenderBlocking     int     `json:"renderBlockingResources"`
	PageSizeKB         int64   `json:"pageSizeKb"`
	LoadTime           float64 `json:"loadTimeSeconds"`

	// Security
	IsHTTPS               bool `json:"isHttps"`
	HasHSTS               bool `json:"hasHsts"`
	HasXContentTypeOpts   bool `json:"hasXContentTypeOptions"`
	HasXFrameOptions      bool `json:"hasXFrameOptions"`
	SSLCertificateValid   bool `json:"sslCertificateValid"`

	// Media
	VideoCount  int      `json:"videoCount"`
	VideoIssues []string `json:"videoIssues"`
	AudioCount  int      `json:"audioCount"`
	AudioIssues []string `json:"audioIssues"`

	// Forms
	FormCount  int      `json:"formCount"`
	FormIssues []string `json:"formIssues"`

	// Deprecated markup
	DeprecatedTagCount int  `json:"deprecatedTagCount"`
	InlineStyleCount   int  `json:"inlineStyleCount"`
	HasFlash           bool `json:"hasFlash"`
	DOMNodeCount       int  `json:"domNodeCount"`

	// Accessibility
	HasMainLandmark   bool `json:"hasMainLandmark"`
	HasNavLandmark    bool `json:"hasNavLandmark"`
	HasFooterLandmark bool `json:"hasFooterLandmark"`
	HasSkipLink       bool `json:"hasSkipLink"`
	PositiveTabIndex  int  `json:"positiveTabIndex"`

	// Content quality
	KeywordDensity     map[string]float64 `json:"keywordDensity"`
	ReadingEase        float64            `json:"readingEase"`
	AvgSentenceLength  float64            `json:"averageSentenceLength"`
	Author             string             `json:"author,omitempty"`
	PublishedDate      string             `json:"publishedDate,omitempty"`
	ModifiedDate       string             `json:"modifiedDate,omitempty"`

	// Structured data
	StructuredDataTypes []string          `json:"structuredDataTypes"`
	SchemaDetails       map[string]string `json:"schemaDetails"`

	// Scoring
	Signals        []Signal         `json:"signals"`
	CategoryScores map[Category]int `json:"categoryScores"`
	OverallScore   int              `json:"overallScore"`
	Grade          string           `json:"grade"`

	Recommendations []Recommendation `json:"recommendations"`

	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// StatusOf returns the status of the named signal, or StatusUnknown if
// the signal was not evaluated.
func (r *AuditResult) StatusOf(name string) Status {
	for i := range r.Signals {
		if r.Signals[i].Name == name {
			return r.Signals[i].Status
		}
	}
	return StatusUnknown
}

// SignalsFor returns the statuses belonging to one category.
func (r *AuditResult) SignalsFor(category Category) []Signal {
	var out []Signal
	for _, s := range r.Signals {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// AuditRecord is a persisted audit with its storage identity.
type AuditRecord struct {
	ID          string       `json:"id"`
	URL         string       `json:"url"`
	ContentHash string       `json:"contentHash"`
	Score       int          `json:"score"`
	Grade       string       `json:"grade"`
	Result      *AuditResult `json:"result"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Validate returns an error if the record cannot be stored.
func (a *AuditRecord) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "audit URL required")
	}
	if a.Result == nil {
		return Errorf(EINVALID, "audit result required")
	}
	return nil
}

// AuditFilter selects stored audits for FindAudits.
type AuditFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// AuditStore persists audit results.
type AuditStore interface {
	// SaveAudit stores a completed audit and assigns its ID.
	SaveAudit(ctx context.Context, record *AuditRecord) error

	// FindAuditByID retrieves a stored audit.
	// Returns ENOTFOUND if no audit with the ID exists.
	FindAuditByID(ctx context.Context, id string) (*AuditRecord, error)

	// FindAudits retrieves stored audits matching the filter, newest
	// first.
	FindAudits(ctx context.Context, filter AuditFilter) ([]*AuditRecord, error)

	// DeleteAudit permanently removes a stored audit.
	// Returns ENOTFOUND if no audit with the ID exists.
	DeleteAudit(ctx context.Context, id string) error
}

// Advisor turns a completed audit into a narrative remediation plan.
type Advisor interface {
	// Explain summarizes the audit's recommendations in prose.
	Explain(ctx context.Context, record *AuditRecord) (string, error)
}

package goquery

import (
	"encoding/json"
	"fmt"
	"strings"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/PuerkitoBio/goquery"
)

// invalidJSONLD marks a ld+json script that failed to parse. The audit
// continues; the marker surfaces in the detected-types list.
const invalidJSONLD = "Invalid JSON-LD"

// Recognized schema.org types, matched by substring against valid
// ld+json payloads.
var schemaMarkers = []struct {
	label  string
	marker string
}{
	{"Breadcrumb", "Breadcrumb"},
	{"Article", "Article"},
	{"Product", "Product"},
	{"Organization", "Organization"},
	{"LocalBusiness", "LocalBusiness"},
	{"Video", "Video"},
	{"FAQ", "FAQ"},
}

// extractStructuredData parses every application/ld+json script
// independently and records microdata presence.
func extractStructuredData(d *Document, r *seoaudit.AuditResult) {
	r.SchemaDetails = make(map[string]string)

	scripts := d.Find(`script[type="application/ld+json"]`)
	invalid := 0
	scripts.Each(func(_ int, s *goquery.Selection) {
		raw := s.Text()

		var payload any
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			invalid++
			r.StructuredDataTypes = append(r.StructuredDataTypes, invalidJSONLD)
			return
		}

		types := schemaTypes(payload)
		if len(types) == 0 {
			types = []string{"JSON-LD"}
		}
		r.StructuredDataTypes = append(r.StructuredDataTypes, types...)

		for _, m := range schemaMarkers {
			if strings.Contains(raw, m.marker) {
				r.SchemaDetails[m.label] = "Detected"
			}
		}
	})

	if d.Find("[itemtype]").Length() > 0 {
		r.StructuredDataTypes = append(r.StructuredDataTypes, "Microdata")
	}

	switch {
	case len(r.StructuredDataTypes) == 0:
		addSignal(r, seoaudit.CategoryStructuredData, SignalStructuredData, "", seoaudit.StatusInfo, "None")
	case invalid > 0:
		addSignal(r, seoaudit.CategoryStructuredData, SignalStructuredData,
			fmt.Sprintf("%d invalid", invalid), seoaudit.StatusWarning, invalidJSONLD)
	default:
		addSignal(r, seoaudit.CategoryStructuredData, SignalStructuredData,
			strings.Join(r.StructuredDataTypes, ", "), seoaudit.StatusGood, "")
	}
}

// schemaTypes walks a decoded ld+json payload and collects @type
// values from the top level and any @graph entries.
func schemaTypes(payload any) []string {
	var types []string

	var collect func(v any)
	collect = func(v any) {
		switch val := v.(type) {
		case map[string]any:
			switch t := val["@type"].(type) {
			case string:
				types = append(types, t)
			case []any:
				for _, item := range t {
					if s, ok := item.(string); ok {
						types = append(types, s)
					}
				}
			}
			if graph, ok := val["@graph"].([]any); ok {
				for _, item := range graph {
					collect(item)
				}
			}
		case []any:
			for _, item := range val {
				collect(item)
			}
		}
	}
	collect(payload)
	return types
}

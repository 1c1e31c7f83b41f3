// Package seoaudit analyzes a single fetched HTML document and produces
// a structured, scored audit of its search-engine-optimization
// characteristics: discrete signals across fourteen categories, a
// normalized 0-100 score per category and overall, and a prioritized
// list of actionable recommendations.
//
// This package contains domain types, interfaces and the pure scoring,
// readability and recommendation algorithms following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package seoaudit

package goquery

import (
	"strings"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// extractSecurity evaluates the HTTPS signal and records security
// header presence. Header facts feed reporting, not scoring. A valid
// certificate is approximated by the HTTPS connection having
// succeeded.
func extractSecurity(page *seoaudit.Page, r *seoaudit.AuditResult) {
	r.IsHTTPS = page.IsHTTPS
	r.SSLCertificateValid = page.IsHTTPS
	r.HasHSTS = headerPresent(page.Headers, "Strict-Transport-Security")
	r.HasXContentTypeOpts = headerPresent(page.Headers, "X-Content-Type-Options")
	r.HasXFrameOptions = headerPresent(page.Headers, "X-Frame-Options")

	if page.IsHTTPS {
		addSignal(r, seoaudit.CategorySecurity, SignalHTTPS, "https", seoaudit.StatusGood, "")
	} else {
		addSignal(r, seoaudit.CategorySecurity, SignalHTTPS, "http", seoaudit.StatusCritical, "Not HTTPS")
	}
}

func headerPresent(headers map[string]string, name string) bool {
	for k := range headers {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

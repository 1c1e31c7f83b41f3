package mock

import (
	"context"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

var _ seoaudit.Auditor = (*Auditor)(nil)

// Auditor is a mock implementation of seoaudit.Auditor.
type Auditor struct {
	AuditFn func(ctx context.Context, page *seoaudit.Page) *seoaudit.AuditResult
}

func (a *Auditor) Audit(ctx context.Context, page *seoaudit.Page) *seoaudit.AuditResult {
	return a.AuditFn(ctx, page)
}

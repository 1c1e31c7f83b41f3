package mock

import (
	"context"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

var _ seoaudit.AuditStore = (*AuditStore)(nil)

// AuditStore is a mock implementation of seoaudit.AuditStore.
type AuditStore struct {
	SaveAuditFn     func(ctx context.Context, record *seoaudit.AuditRecord) error
	FindAuditByIDFn func(ctx context.Context, id string) (*seoaudit.AuditRecord, error)
	FindAuditsFn    func(ctx context.Context, filter seoaudit.AuditFilter) ([]*seoaudit.AuditRecord, error)
	DeleteAuditFn   func(ctx context.Context, id string) error
}

func (s *AuditStore) SaveAudit(ctx context.Context, record *seoaudit.AuditRecord) error {
	return s.SaveAuditFn(ctx, record)
}

func (s *AuditStore) FindAuditByID(ctx context.Context, id string) (*seoaudit.AuditRecord, error) {
	return s.FindAuditByIDFn(ctx, id)
}

func (s *AuditStore) FindAudits(ctx context.Context, filter seoaudit.AuditFilter) ([]*seoaudit.AuditRecord, error) {
	return s.FindAuditsFn(ctx, filter)
}

func (s *AuditStore) DeleteAudit(ctx context.Context, id string) error {
	return s.DeleteAuditFn(ctx, id)
}

var _ seoaudit.Advisor = (*Advisor)(nil)

// Advisor is a mock implementation of seoaudit.Advisor.
type Advisor struct {
	ExplainFn func(ctx context.Context, record *seoaudit.AuditRecord) (string, error)
}

func (a *Advisor) Explain(ctx context.Context, record *seoaudit.AuditRecord) (string, error) {
	return a.ExplainFn(ctx, record)
}

// Package slog provides logging decorators for the domain services.
package slog

import (
	"context"
	"log/slog"
	"time"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// Ensure LoggingAuditor implements seoaudit.Auditor.
var _ seoaudit.Auditor = (*LoggingAuditor)(nil)

// LoggingAuditor wraps an Auditor with operational logging.
type LoggingAuditor struct {
	next   seoaudit.Auditor
	logger *slog.Logger
}

// NewLoggingAuditor creates a new LoggingAuditor.
func NewLoggingAuditor(next seoaudit.Auditor, logger *slog.Logger) *LoggingAuditor {
	return &LoggingAuditor{next: next, logger: logger}
}

// Audit delegates to the wrapped auditor and logs the outcome.
func (a *LoggingAuditor) Audit(ctx context.Context, page *seoaudit.Page) *seoaudit.AuditResult {
	begin := time.Now()
	result := a.next.Audit(ctx, page)
	a.logger.Info("page audit",
		"url", result.URL,
		"score", result.OverallScore,
		"grade", result.Grade,
		"signals", len(result.Signals),
		"recommendations", len(result.Recommendations),
		"success", result.Success,
		"duration", time.Since(begin),
	)
	return result
}

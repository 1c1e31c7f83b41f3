package slog

import (
	"context"
	"log/slog"
	"time"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// Ensure LoggingFetcher implements seoaudit.Fetcher.
var _ seoaudit.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with operational logging.
type LoggingFetcher struct {
	next   seoaudit.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next seoaudit.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *seoaudit.Page, err error) {
	defer func(begin time.Time) {
		size := int64(0)
		if page != nil {
			size = page.SizeKB
		}
		f.logger.Info("page fetch",
			"url", url,
			"size_kb", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

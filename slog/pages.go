// Package slog provides logging decorators for infobox services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/infobox"
)

// Ensure LoggingPageSource implements infobox.PageSource.
var _ infobox.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with logging.
type LoggingPageSource struct {
	next   infobox.PageSource
	source string
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource. source identifies
// the wrapped source in log output, typically the dump path.
func NewLoggingPageSource(next infobox.PageSource, source string, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, source: source, logger: logger}
}

// ReadPages delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) ReadPages(ctx context.Context) (pages []*infobox.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read pages",
			"source", s.source,
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadPages(ctx)
}

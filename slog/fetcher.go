// Package slog provides logging decorators built on log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scaladoc"
)

// Ensure LoggingFetcher implements scaladoc.IndexFetcher.
var _ scaladoc.IndexFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps an IndexFetcher with logging.
type LoggingFetcher struct {
	next   scaladoc.IndexFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next scaladoc.IndexFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchIndex delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) FetchIndex(ctx context.Context, location string) (links []string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch index",
			"location", location,
			"links", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchIndex(ctx, location)
}

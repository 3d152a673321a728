package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scaladoc"
)

// Ensure LoggingStore implements scaladoc.CacheStore.
var _ scaladoc.CacheStore = (*LoggingStore)(nil)

// LoggingStore wraps a CacheStore with debug logging of cache maintenance.
type LoggingStore struct {
	next   scaladoc.CacheStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next scaladoc.CacheStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// OfficialSource delegates to the wrapped store.
func (s *LoggingStore) OfficialSource(home string) *scaladoc.CacheSource {
	return s.next.OfficialSource(home)
}

// LocalSource delegates to the wrapped store.
func (s *LoggingStore) LocalSource(dir string) *scaladoc.CacheSource {
	return s.next.LocalSource(dir)
}

// EnsureFresh delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) EnsureFresh(ctx context.Context, src *scaladoc.CacheSource) (usable bool, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("cache check",
			"source", src.ID,
			"kind", src.Kind.String(),
			"index", src.Index,
			"usable", usable,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EnsureFresh(ctx, src)
}

// PruneStale delegates to the wrapped store and logs the operation.
func (s *LoggingStore) PruneStale() (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("cache prune",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.PruneStale()
}

// Lines delegates to the wrapped store.
func (s *LoggingStore) Lines(src *scaladoc.CacheSource) ([]string, error) {
	return s.next.Lines(src)
}

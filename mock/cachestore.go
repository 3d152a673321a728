package mock

import (
	"context"

	"github.com/fwojciec/scaladoc"
)

var _ scaladoc.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of scaladoc.CacheStore.
type CacheStore struct {
	OfficialSourceFn func(home string) *scaladoc.CacheSource
	LocalSourceFn    func(dir string) *scaladoc.CacheSource
	EnsureFreshFn    func(ctx context.Context, src *scaladoc.CacheSource) (bool, error)
	PruneStaleFn     func() error
	LinesFn          func(src *scaladoc.CacheSource) ([]string, error)
}

func (s *CacheStore) OfficialSource(home string) *scaladoc.CacheSource {
	return s.OfficialSourceFn(home)
}

func (s *CacheStore) LocalSource(dir string) *scaladoc.CacheSource {
	return s.LocalSourceFn(dir)
}

func (s *CacheStore) EnsureFresh(ctx context.Context, src *scaladoc.CacheSource) (bool, error) {
	return s.EnsureFreshFn(ctx, src)
}

func (s *CacheStore) PruneStale() error {
	return s.PruneStaleFn()
}

func (s *CacheStore) Lines(src *scaladoc.CacheSource) ([]string, error) {
	return s.LinesFn(src)
}

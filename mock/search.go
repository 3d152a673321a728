package mock

import (
	"context"

	"github.com/fwojciec/scaladoc"
)

var _ scaladoc.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of scaladoc.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, req scaladoc.SearchRequest) ([]string, error)
}

func (s *Searcher) Search(ctx context.Context, req scaladoc.SearchRequest) ([]string, error) {
	return s.SearchFn(ctx, req)
}

var _ scaladoc.Opener = (*Opener)(nil)

// Opener is a mock implementation of scaladoc.Opener.
type Opener struct {
	OpenFn func(url string) error
}

func (o *Opener) Open(url string) error {
	return o.OpenFn(url)
}

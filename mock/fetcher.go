package mock

import (
	"context"
	"io"

	"github.com/fwojciec/scaladoc"
)

var _ scaladoc.IndexFetcher = (*IndexFetcher)(nil)

// IndexFetcher is a mock implementation of scaladoc.IndexFetcher.
type IndexFetcher struct {
	FetchIndexFn func(ctx context.Context, location string) ([]string, error)
}

func (f *IndexFetcher) FetchIndex(ctx context.Context, location string) ([]string, error) {
	return f.FetchIndexFn(ctx, location)
}

var _ scaladoc.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of scaladoc.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(r io.Reader) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(r io.Reader) ([]string, error) {
	return e.ExtractLinksFn(r)
}

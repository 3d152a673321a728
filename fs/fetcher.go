package fs

import (
	"context"
	"os"

	"github.com/fwojciec/scaladoc"
)

// Ensure IndexFetcher implements scaladoc.IndexFetcher at compile time.
var _ scaladoc.IndexFetcher = (*IndexFetcher)(nil)

// IndexFetcher reads documentation indexes from the local filesystem.
type IndexFetcher struct {
	extractor scaladoc.LinkExtractor
}

// FetcherOption configures an IndexFetcher.
type FetcherOption func(*IndexFetcher)

// WithExtractor sets how links are pulled from the index.
// Defaults to scaladoc.HrefScanner.
func WithExtractor(e scaladoc.LinkExtractor) FetcherOption {
	return func(f *IndexFetcher) {
		f.extractor = e
	}
}

// NewIndexFetcher creates a new local IndexFetcher.
func NewIndexFetcher(opts ...FetcherOption) *IndexFetcher {
	f := &IndexFetcher{extractor: scaladoc.HrefScanner{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchIndex reads the index file at path and returns its links.
func (f *IndexFetcher) FetchIndex(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, scaladoc.Errorf(scaladoc.EFETCH, "open index %s: %v", path, err)
	}
	defer file.Close()

	links, err := f.extractor.ExtractLinks(file)
	if err != nil {
		return nil, scaladoc.Errorf(scaladoc.EFETCH, "read index %s: %v", path, err)
	}
	return links, nil
}

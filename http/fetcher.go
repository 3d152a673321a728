// Package http provides an HTTP-based implementation of scaladoc.IndexFetcher
// for documentation indexes served by a web site.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/scaladoc"
)

// DefaultFetchTimeout is the default timeout for the index request.
const DefaultFetchTimeout = 10 * time.Second

// Ensure IndexFetcher implements scaladoc.IndexFetcher at compile time.
var _ scaladoc.IndexFetcher = (*IndexFetcher)(nil)

// IndexFetcher retrieves an index page with a single GET and extracts its links.
// Requests are not retried.
type IndexFetcher struct {
	client    *http.Client
	timeout   time.Duration
	extractor scaladoc.LinkExtractor
}

// Option configures an IndexFetcher.
type Option func(*IndexFetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *IndexFetcher) {
		f.timeout = d
	}
}

// WithExtractor sets how links are pulled from the response body.
// Defaults to scaladoc.HrefScanner.
func WithExtractor(e scaladoc.LinkExtractor) Option {
	return func(f *IndexFetcher) {
		f.extractor = e
	}
}

// NewIndexFetcher creates a new HTTP-based IndexFetcher.
func NewIndexFetcher(opts ...Option) *IndexFetcher {
	f := &IndexFetcher{
		timeout:   DefaultFetchTimeout,
		extractor: scaladoc.HrefScanner{},
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// FetchIndex downloads the index at url and returns its links.
// Network failures and non-200 responses return EFETCH.
func (f *IndexFetcher) FetchIndex(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, scaladoc.Errorf(scaladoc.EFETCH, "build request for %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, scaladoc.Errorf(scaladoc.EFETCH, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, scaladoc.Errorf(scaladoc.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	links, err := f.extractor.ExtractLinks(resp.Body)
	if err != nil {
		return nil, scaladoc.Errorf(scaladoc.EFETCH, "read %s: %v", url, err)
	}
	return links, nil
}

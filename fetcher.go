package scaladoc

import (
	"bufio"
	"context"
	"errors"
	"io"
	"regexp"
)

// IndexFetcher retrieves the link targets of a documentation index.
type IndexFetcher interface {
	// FetchIndex reads the index at location and returns every link target
	// in order of first appearance. Duplicates are kept.
	// Returns EFETCH if the index cannot be read.
	FetchIndex(ctx context.Context, location string) ([]string, error)
}

// LinkExtractor pulls link targets out of an HTML document.
type LinkExtractor interface {
	ExtractLinks(r io.Reader) ([]string, error)
}

// hrefRe matches any href="..." attribute, inside a tag or not.
var hrefRe = regexp.MustCompile(`(?i)href="([^ ><]*)"`)

// Ensure HrefScanner implements LinkExtractor at compile time.
var _ LinkExtractor = HrefScanner{}

// HrefScanner extracts links with a loose line-by-line pattern scan.
// It does not parse HTML, so it also picks up href="..." text in scripts
// and comments. Scaladoc indexes are large and this keeps the scan fast.
type HrefScanner struct{}

// ExtractLinks implements LinkExtractor.
func (HrefScanner) ExtractLinks(r io.Reader) ([]string, error) {
	var links []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		for _, m := range hrefRe.FindAllStringSubmatch(line, -1) {
			links = append(links, m[1])
		}
		if errors.Is(err, io.EOF) {
			return links, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

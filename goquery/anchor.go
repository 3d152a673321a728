// Package goquery provides HTML-parsing link extraction using goquery.
package goquery

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scaladoc"
)

// Ensure AnchorExtractor implements scaladoc.LinkExtractor at compile time.
var _ scaladoc.LinkExtractor = (*AnchorExtractor)(nil)

// AnchorExtractor extracts href attributes of parsed HTML elements.
// Unlike scaladoc.HrefScanner it ignores href text in scripts, comments
// and attribute values of other names.
type AnchorExtractor struct {
	selector string
}

// NewAnchorExtractor returns an extractor for every element carrying an href.
func NewAnchorExtractor() *AnchorExtractor {
	return &AnchorExtractor{selector: "[href]"}
}

// ExtractLinks returns non-empty href values in document order.
func (e *AnchorExtractor) ExtractLinks(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, scaladoc.Errorf(scaladoc.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []string
	doc.Find(e.selector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		links = append(links, href)
	})
	return links, nil
}

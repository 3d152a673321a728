package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/scaladoc"
)

// Run executes the search command.
// Every match is printed; the first one is opened in the browser.
func (c *SearchCmd) Run(deps *Dependencies) error {
	urls, err := deps.Searcher.Search(deps.Ctx, scaladoc.SearchRequest{
		File:     c.File,
		Keywords: c.Keywords,
		DocPaths: c.DocPaths,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scaladoc.ErrorMessage(err))
		return err
	}

	query := strings.Join(c.Keywords, " ")
	if len(urls) == 0 {
		fmt.Fprintf(deps.Stderr, "no documentation found for %q\n", query)
		return scaladoc.Errorf(scaladoc.ENOTFOUND, "no documentation found for %q", query)
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	if c.NoOpen {
		return nil
	}
	if err := deps.Opener.Open(urls[0]); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to open browser: %v\n", err)
		return err
	}
	return nil
}

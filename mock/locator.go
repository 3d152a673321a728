package mock

import "github.com/fwojciec/scaladoc"

var _ scaladoc.DocsLocator = (*DocsLocator)(nil)

// DocsLocator is a mock implementation of scaladoc.DocsLocator.
type DocsLocator struct {
	LocateDocsFn func(path string) (string, bool)
}

func (l *DocsLocator) LocateDocs(path string) (string, bool) {
	return l.LocateDocsFn(path)
}

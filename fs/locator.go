package fs

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/fwojciec/scaladoc"
)

// Ensure Locator implements scaladoc.DocsLocator at compile time.
var _ scaladoc.DocsLocator = (*Locator)(nil)

// Locator finds generated API docs of an sbt-style project:
//
//	<project>/src/main/scala/Foo.scala
//	<project>/target/scala-2.13/api/index.html
type Locator struct {
	sourceDir   string
	buildDir    string
	versionGlob string
	docsDir     string
}

// LocatorOption configures a Locator.
type LocatorOption func(*Locator)

// WithSourceDir sets the directory name marking the project root's source tree.
func WithSourceDir(name string) LocatorOption {
	return func(l *Locator) { l.sourceDir = name }
}

// WithBuildDir sets the build output directory name, a sibling of the source dir.
func WithBuildDir(name string) LocatorOption {
	return func(l *Locator) { l.buildDir = name }
}

// WithVersionGlob sets the pattern of versioned output directories.
func WithVersionGlob(pattern string) LocatorOption {
	return func(l *Locator) { l.versionGlob = pattern }
}

// WithDocsDir sets the docs directory name inside a versioned output directory.
func WithDocsDir(name string) LocatorOption {
	return func(l *Locator) { l.docsDir = name }
}

// NewLocator creates a Locator with sbt defaults.
func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		sourceDir:   "src",
		buildDir:    "target",
		versionGlob: "scala-*",
		docsDir:     "api",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LocateDocs walks up from path to the first source directory and returns
// the newest docs directory of that project. The search stops at the first
// source directory even if it has no docs.
func (l *Locator) LocateDocs(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	p, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	for {
		parent := filepath.Dir(p)
		if parent == p {
			return "", false
		}
		if filepath.Base(p) == l.sourceDir {
			return l.newestDocs(parent)
		}
		p = parent
	}
}

func (l *Locator) newestDocs(root string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(root, l.buildDir, l.versionGlob))
	if err != nil {
		return "", false
	}

	var found []string
	for _, m := range matches {
		docs := filepath.Join(m, l.docsDir)
		if _, err := os.Stat(filepath.Join(docs, "index.html")); err == nil {
			found = append(found, docs)
		}
	}
	if len(found) == 0 {
		return "", false
	}
	return slices.Max(found), true
}

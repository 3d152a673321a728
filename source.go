package scaladoc

import "context"

// OfficialHome is the root of the official Scala API documentation.
const OfficialHome = "https://www.scala-lang.org/api/current"

// OfficialSourceID names the cache file of the official site.
const OfficialSourceID = "official_site_cache"

// LocalSourcePrefix prefixes the cache file name of every local source.
// Only files carrying this prefix are subject to pruning.
const LocalSourcePrefix = "local_"

// SourceKind distinguishes how a source's freshness is judged.
type SourceKind int

// Source kinds.
const (
	// SourceOfficial caches are refreshed when older than the TTL.
	SourceOfficial SourceKind = iota

	// SourceLocal caches are refreshed when the docs directory changes.
	SourceLocal
)

func (k SourceKind) String() string {
	switch k {
	case SourceOfficial:
		return "official"
	case SourceLocal:
		return "local"
	default:
		return "unknown"
	}
}

// CacheSource is one documentation root with its own cache file.
type CacheSource struct {
	ID   string
	Kind SourceKind

	// Origin is the URL prefix joined with every cache line.
	Origin string

	// Index is the location handed to an IndexFetcher: a URL for the
	// official site, a file path for local docs.
	Index string

	// Dir is the local docs directory. Its mtime decides whether a local
	// cache is stale. Empty for the official source.
	Dir string

	// CachePath is where the normalized cache file lives.
	CachePath string
}

// URL joins a cache line with the source origin.
func (s *CacheSource) URL(line string) string {
	return s.Origin + "/" + line
}

// CacheStore owns the cache files of all sources.
type CacheStore interface {
	// OfficialSource returns the source for the documentation site at home.
	OfficialSource(home string) *CacheSource

	// LocalSource returns the source for a local docs directory.
	LocalSource(dir string) *CacheSource

	// EnsureFresh rebuilds the source's cache file when it is missing or stale.
	// Returns false if the source is unusable (e.g. the local index is gone),
	// in which case any cache file left for it has been removed.
	// Returns EFETCH if the index could not be fetched.
	EnsureFresh(ctx context.Context, src *CacheSource) (bool, error)

	// PruneStale deletes local caches that have not been touched within the TTL.
	PruneStale() error

	// Lines returns the cache lines of the source in file order.
	Lines(src *CacheSource) ([]string, error)
}

// DocsLocator finds locally generated documentation for a source file.
type DocsLocator interface {
	// LocateDocs returns the docs directory of the project enclosing path.
	// Returns false if the project has no generated docs.
	LocateDocs(path string) (string, bool)
}

// SearchRequest describes a single lookup.
type SearchRequest struct {
	// File is the file (or directory) the lookup was invoked from.
	File string

	// Keywords are the query terms; the last one must name the page.
	Keywords []string

	// DocPaths are additional local docs directories to search.
	DocPaths []string
}

// Searcher resolves keyword queries into documentation URLs.
type Searcher interface {
	// Search returns matching URLs, best tier only. An empty result is not an error.
	Search(ctx context.Context, req SearchRequest) ([]string, error)
}

// Opener opens a URL for the user.
type Opener interface {
	Open(url string) error
}

package scaladoc

import (
	"regexp"
	"strings"
)

// MatchKind classifies how a cache line matched a query.
type MatchKind int

// Match kinds, from no match to the best tier.
const (
	MatchNone MatchKind = iota
	MatchPrefix
	MatchExact
)

// Matcher classifies cache lines against a keyword query.
//
// All keywords but the last must each start a path segment, in order,
// before the final segment. The last keyword names the page: an exact
// match allows only the object marker after it, a prefix match allows
// anything.
//
//	[list]       matches scala/collection/immutable/List.html (exact)
//	[im queue]   matches scala/collection/immutable/Queue.html
//	[mu queue]   matches scala/collection/mutable/Queue.html
//	[lis]        matches scala/collection/immutable/List.html (prefix)
type Matcher struct {
	exact  *regexp.Regexp
	prefix *regexp.Regexp
}

// NewMatcher compiles a matcher for keywords. Keywords are case-insensitive
// and may be wrapped in double quotes.
// Returns EINVALID if there are no keywords or a keyword is empty.
func NewMatcher(keywords []string) (*Matcher, error) {
	if len(keywords) == 0 {
		return nil, Errorf(EINVALID, "at least one keyword required")
	}

	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.Trim(strings.TrimSpace(kw), `"`)
		if kw == "" {
			return nil, Errorf(EINVALID, "empty keyword")
		}
		cleaned = append(cleaned, regexp.QuoteMeta(kw))
	}

	// Segments before the first keyword (the root package) are free.
	var path strings.Builder
	path.WriteString(`(?i)^(?:[^/]*/)*?`)
	for _, kw := range cleaned[:len(cleaned)-1] {
		path.WriteString(kw)
		path.WriteString(`[^/]*/(?:[^/]*/)*?`)
	}
	last := cleaned[len(cleaned)-1]

	exact, err := regexp.Compile(path.String() + last + `\$?\.html$`)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid query: %v", err)
	}
	prefix, err := regexp.Compile(path.String() + last + `[^/]*\.html$`)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid query: %v", err)
	}

	return &Matcher{exact: exact, prefix: prefix}, nil
}

// Match classifies a single cache line.
func (m *Matcher) Match(line string) MatchKind {
	switch {
	case m.exact.MatchString(line):
		return MatchExact
	case m.prefix.MatchString(line):
		return MatchPrefix
	default:
		return MatchNone
	}
}

// MatchResult collects URLs per match tier.
type MatchResult struct {
	Exact  []string
	Prefix []string
}

// Add records url under the given tier. MatchNone is ignored.
func (r *MatchResult) Add(kind MatchKind, url string) {
	switch kind {
	case MatchExact:
		r.Exact = append(r.Exact, url)
	case MatchPrefix:
		r.Prefix = append(r.Prefix, url)
	}
}

// URLs returns the exact matches if there are any, the prefix matches otherwise.
// The two tiers are never mixed.
func (r *MatchResult) URLs() []string {
	if len(r.Exact) > 0 {
		return r.Exact
	}
	return r.Prefix
}

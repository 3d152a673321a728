// Package search resolves keyword queries against every documentation
// source: the official site, docs generated for the current project,
// and extra docs directories supplied by the user.
package search

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/scaladoc"
)

// Ensure Searcher implements scaladoc.Searcher at compile time.
var _ scaladoc.Searcher = (*Searcher)(nil)

// Searcher keeps caches fresh and matches queries against them.
// Sources are processed one after another.
type Searcher struct {
	Store   scaladoc.CacheStore
	Locator scaladoc.DocsLocator

	// OfficialHome is the root URL of the official docs.
	// Defaults to scaladoc.OfficialHome.
	OfficialHome string
}

// Search returns URLs of pages matching req.Keywords.
//
// Stale local caches are pruned first. The official source must refresh
// successfully; a local source whose index is gone is skipped.
func (s *Searcher) Search(ctx context.Context, req scaladoc.SearchRequest) ([]string, error) {
	matcher, err := scaladoc.NewMatcher(req.Keywords)
	if err != nil {
		return nil, err
	}

	if err := s.Store.PruneStale(); err != nil {
		return nil, fmt.Errorf("prune stale caches: %w", err)
	}

	sources, err := s.sources(ctx, req)
	if err != nil {
		return nil, err
	}

	var result scaladoc.MatchResult
	for _, src := range sources {
		lines, err := s.Store.Lines(src)
		if err != nil {
			return nil, fmt.Errorf("read cache %s: %w", src.ID, err)
		}
		for _, line := range lines {
			result.Add(matcher.Match(line), src.URL(line))
		}
	}
	return result.URLs(), nil
}

// sources returns every usable source with a fresh cache.
func (s *Searcher) sources(ctx context.Context, req scaladoc.SearchRequest) ([]*scaladoc.CacheSource, error) {
	home := s.OfficialHome
	if home == "" {
		home = scaladoc.OfficialHome
	}

	official := s.Store.OfficialSource(home)
	if _, err := s.Store.EnsureFresh(ctx, official); err != nil {
		return nil, err
	}
	sources := []*scaladoc.CacheSource{official}

	for _, dir := range s.docDirs(req) {
		src := s.Store.LocalSource(dir)
		ok, err := s.Store.EnsureFresh(ctx, src)
		if err != nil {
			return nil, err
		}
		if ok {
			sources = append(sources, src)
		}
	}
	return sources, nil
}

// docDirs returns the user's doc paths plus the project's own docs,
// expanded, absolute and without duplicates.
func (s *Searcher) docDirs(req scaladoc.SearchRequest) []string {
	var dirs []string
	add := func(p string) {
		p = expandPath(p)
		if p != "" && !slices.Contains(dirs, p) {
			dirs = append(dirs, p)
		}
	}

	for _, p := range req.DocPaths {
		add(p)
	}
	if s.Locator != nil && req.File != "" {
		if dir, ok := s.Locator.LocateDocs(req.File); ok {
			add(dir)
		}
	}
	return dirs
}

// expandPath resolves a leading ~ and makes the path absolute.
func expandPath(p string) string {
	if p == "" {
		return ""
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return filepath.Clean(p)
}

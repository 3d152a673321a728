package search_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/scaladoc"
	"github.com/fwojciec/scaladoc/fs"
	scaladochttp "github.com/fwojciec/scaladoc/http"
	"github.com/fwojciec/scaladoc/mock"
	"github.com/fwojciec/scaladoc/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const home = "https://docs.example.com/api"

// memStore is a mock store serving fixed lines per source id.
func memStore(lines map[string][]string, usable map[string]bool) *mock.CacheStore {
	return &mock.CacheStore{
		OfficialSourceFn: func(h string) *scaladoc.CacheSource {
			return &scaladoc.CacheSource{ID: scaladoc.OfficialSourceID, Kind: scaladoc.SourceOfficial, Origin: h}
		},
		LocalSourceFn: func(dir string) *scaladoc.CacheSource {
			return &scaladoc.CacheSource{ID: dir, Kind: scaladoc.SourceLocal, Origin: "file://" + dir, Dir: dir}
		},
		EnsureFreshFn: func(ctx context.Context, src *scaladoc.CacheSource) (bool, error) {
			if src.Kind == scaladoc.SourceOfficial {
				return true, nil
			}
			return usable[src.ID], nil
		},
		PruneStaleFn: func() error { return nil },
		LinesFn: func(src *scaladoc.CacheSource) ([]string, error) {
			return lines[src.ID], nil
		},
	}
}

func noDocs() *mock.DocsLocator {
	return &mock.DocsLocator{
		LocateDocsFn: func(path string) (string, bool) { return "", false },
	}
}

var officialLines = map[string][]string{
	scaladoc.OfficialSourceID: {
		"scala/collection/immutable/List.html",
		"scala/collection/immutable/Queue.html",
		"scala/collection/mutable/Queue.html",
	},
}

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("returns official URLs for a single keyword", func(t *testing.T) {
		t.Parallel()

		s := &search.Searcher{Store: memStore(officialLines, nil), Locator: noDocs(), OfficialHome: home}

		urls, err := s.Search(context.Background(), scaladoc.SearchRequest{Keywords: []string{"list"}})

		require.NoError(t, err)
		assert.Equal(t, []string{home + "/scala/collection/immutable/List.html"}, urls)
	})

	t.Run("disambiguates with a path keyword", func(t *testing.T) {
		t.Parallel()

		s := &search.Searcher{Store: memStore(officialLines, nil), Locator: noDocs(), OfficialHome: home}

		urls, err := s.Search(context.Background(), scaladoc.SearchRequest{Keywords: []string{"mu", "queue"}})

		require.NoError(t, err)
		assert.Equal(t, []string{home + "/scala/collection/mutable/Queue.html"}, urls)
	})

	t.Run("returns empty result when nothing matches", func(t *testing.T) {
		t.Parallel()

		s := &search.Searcher{Store: memStore(officialLines, nil), Locator: noDocs(), OfficialHome: home}

		urls, err := s.Search(context.Background(), scaladoc.SearchRequest{Keywords: []string{"vector"}})

		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("defaults to the official Scala site", func(t *testing.T) {
		t.Parallel()

		var got string
		store := memStore(officialLines, nil)
		officialFn := store.OfficialSourceFn
		store.OfficialSourceFn = func(h string) *scaladoc.CacheSource {
			got = h
			return officialFn(h)
		}
		s := &search.Searcher{Store: store, Locator: noDocs()}

		_, err := s.Search(context.Background(), scaladoc.SearchRequest{Keywords: []string{"list"}})

		require.NoError(t, err)
		assert.Equal(t, scaladoc.OfficialHome, got)
	})

	t.Run("adds docs located from the file", func(t *testing.T) {
		t.Parallel()

		lines := map[string][]string{
			scaladoc.OfficialSourceID: {"scala/collection/immutable/List.html"},
			"/proj/target/scala-2.13/api": {"com/acme/Widget.html"},
		}
		usable := map[string]bool{"/proj/target/scala-2.13/api": true}
		var locatedFrom string
		locator := &mock.DocsLocator{
			LocateDocsFn: func(path string) (string, bool) {
				locatedFrom = path
				return "/proj/target/scala-2.13/api", true
			},
		}
		s := &search.Searcher{Store: memStore(lines, usable), Locator: locator, OfficialHome: home}

		urls, err := s.Search(context.Background(), scaladoc.SearchRequest{
			File:     "/proj/src/main/scala/Main.scala",
			Keywords: []string{"widget"},
		})

		require.NoError(t, err)
		assert.Equal(t, "/proj/src/main/scala/Main.scala", locatedFrom)
		assert.Equal(t, []string{"file:///proj/target/scala-2.13/api/com/acme/Widget.html"}, urls)
	})

	t.Run("searches each doc path once", func(t *testing.T) {
		t.Parallel()

		lines := map[string][]string{"/docs/api": {"com/acme/Widget.html"}}
		usable := map[string]bool{"/docs/api": true}
		locator := &mock.DocsLocator{
			LocateDocsFn: func(path string) (string, bool) { return "/docs/api", true },
		}
		s := &search.Searcher{Store: memStore(lines, usable), Locator: locator, OfficialHome: home}

		urls, err := s.Search(context.Background(), scaladoc.SearchRequest{
			File:     "/proj/src/A.scala",
			Keywords: []string{"widget"},
			DocPaths: []string{"/docs/api", "/docs/api/"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"file:///docs/api/com/acme/Widget.html"}, urls)
	})

	t.Run("skips unusable local sources", func(t *testing.T) {
		t.Parallel()

		lines := map[string][]string{
			scaladoc.OfficialSourceID: {"scala/collection/immutable/List.html"},
			"/gone/api":               {"scala/collection/immutable/List.html"},
		}
		s := &search.Searcher{Store: memStore(lines, nil), Locator: noDocs(), OfficialHome: home}

		urls, err := s.Search(context.Background(), scaladoc.SearchRequest{
			Keywords: []string{"list"},
			DocPaths: []string{"/gone/api"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{home + "/scala/collection/immutable/List.html"}, urls)
	})

	t.Run("prunes before refreshing", func(t *testing.T) {
		t.Parallel()

		var calls []string
		store := memStore(officialLines, nil)
		store.PruneStaleFn = func() error {
			calls = append(calls, "prune")
			return nil
		}
		store.EnsureFreshFn = func(ctx context.Context, src *scaladoc.CacheSource) (bool, error) {
			calls = append(calls, "ensure "+src.ID)
			return true, nil
		}
		s := &search.Searcher{Store: store, Locator: noDocs(), OfficialHome: home}

		_, err := s.Search(context.Background(), scaladoc.SearchRequest{Keywords: []string{"list"}})

		require.NoError(t, err)
		assert.Equal(t, []string{"prune", "ensure " + scaladoc.OfficialSourceID}, calls)
	})

	t.Run("propagates official fetch errors", func(t *testing.T) {
		t.Parallel()

		store := memStore(officialLines, nil)
		store.EnsureFreshFn = func(ctx context.Context, src *scaladoc.CacheSource) (bool, error) {
			return false, scaladoc.Errorf(scaladoc.EFETCH, "HTTP 503")
		}
		s := &search.Searcher{Store: store, Locator: noDocs(), OfficialHome: home}

		_, err := s.Search(context.Background(), scaladoc.SearchRequest{Keywords: []string{"list"}})

		require.Error(t, err)
		assert.Equal(t, scaladoc.EFETCH, scaladoc.ErrorCode(err))
	})

	t.Run("propagates prune errors", func(t *testing.T) {
		t.Parallel()

		store := memStore(officialLines, nil)
		store.PruneStaleFn = func() error { return errors.New("permission denied") }
		s := &search.Searcher{Store: store, Locator: noDocs(), OfficialHome: home}

		_, err := s.Search(context.Background(), scaladoc.SearchRequest{Keywords: []string{"list"}})

		require.Error(t, err)
	})

	t.Run("rejects empty queries before touching the store", func(t *testing.T) {
		t.Parallel()

		s := &search.Searcher{Store: &mock.CacheStore{}, Locator: noDocs(), OfficialHome: home}

		_, err := s.Search(context.Background(), scaladoc.SearchRequest{})

		require.Error(t, err)
		assert.Equal(t, scaladoc.EINVALID, scaladoc.ErrorCode(err))
	})
}

// Story: End-to-end lookup
// An official index served over HTTP and a local project's docs are cached
// on disk and searched together.

func TestSearcher_Search_EndToEnd(t *testing.T) {
	t.Parallel()

	// Given an official site with a class, its companion and a solo object
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/api/index.html", r.URL.Path)
		_, _ = w.Write([]byte(`<a href="scala/collection/immutable/List.html">List</a>
<a href="scala/collection/immutable/List$.html">List</a>
<a href="scala/collection/immutable/Nil$.html">Nil</a>
<a href="scala/collection/mutable/ListBuffer.html">ListBuffer</a>`))
	}))
	defer server.Close()

	// And a project with generated docs
	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, "src", "main", "scala"), 0o755))
	api := filepath.Join(project, "target", "scala-2.13", "api")
	require.NoError(t, os.MkdirAll(api, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(api, "index.html"),
		[]byte(`<a href="com/acme/ListView.html">ListView</a>`), 0o644))

	store := fs.NewCacheStore(filepath.Join(t.TempDir(), "cache"),
		fs.WithRemoteFetcher(scaladochttp.NewIndexFetcher()))
	require.NoError(t, store.Open())
	s := &search.Searcher{Store: store, Locator: fs.NewLocator(), OfficialHome: server.URL + "/api"}
	req := scaladoc.SearchRequest{
		File: filepath.Join(project, "src", "main", "scala", "Main.scala"),
	}

	// When I search for an exact name
	req.Keywords = []string{"list"}
	urls, err := s.Search(context.Background(), req)

	// Then only the class page is returned
	require.NoError(t, err)
	assert.Equal(t, []string{server.URL + "/api/scala/collection/immutable/List.html"}, urls)

	// When I search for a prefix
	req.Keywords = []string{"listv"}
	urls, err = s.Search(context.Background(), req)

	// Then the local page is found through its file URL
	require.NoError(t, err)
	assert.Equal(t, []string{"file://" + filepath.ToSlash(api) + "/com/acme/ListView.html"}, urls)

	// When I search for a solo object
	req.Keywords = []string{"nil"}
	urls, err = s.Search(context.Background(), req)

	// Then it is found and the official index was fetched only once
	require.NoError(t, err)
	assert.Equal(t, []string{server.URL + "/api/scala/collection/immutable/Nil$.html"}, urls)
	assert.Equal(t, int32(1), requests.Load())
}

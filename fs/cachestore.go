// Package fs provides file-based implementations: the cache store, the
// local index fetcher and the local docs locator.
package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/scaladoc"
	"github.com/google/uuid"
)

// DefaultTTL is how long the official cache is trusted and how long an
// unused local cache is kept.
const DefaultTTL = 15 * 24 * time.Hour

// Ensure CacheStore implements scaladoc.CacheStore at compile time.
var _ scaladoc.CacheStore = (*CacheStore)(nil)

// CacheStore keeps one flat cache file per documentation source in a directory.
type CacheStore struct {
	dir    string
	ttl    time.Duration
	remote scaladoc.IndexFetcher
	local  scaladoc.IndexFetcher
	now    func() time.Time
}

// Option configures a CacheStore.
type Option func(*CacheStore)

// WithTTL sets the cache time-to-live.
// Defaults to DefaultTTL (15 days) if not specified.
func WithTTL(d time.Duration) Option {
	return func(s *CacheStore) {
		s.ttl = d
	}
}

// WithRemoteFetcher sets the fetcher used for the official site.
func WithRemoteFetcher(f scaladoc.IndexFetcher) Option {
	return func(s *CacheStore) {
		s.remote = f
	}
}

// WithLocalFetcher sets the fetcher used for local docs.
// Defaults to an IndexFetcher reading files with the href scanner.
func WithLocalFetcher(f scaladoc.IndexFetcher) Option {
	return func(s *CacheStore) {
		s.local = f
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *CacheStore) {
		s.now = now
	}
}

// NewCacheStore creates a CacheStore rooted at dir.
// Call Open before use.
func NewCacheStore(dir string, opts ...Option) *CacheStore {
	s := &CacheStore{
		dir:   dir,
		ttl:   DefaultTTL,
		local: NewIndexFetcher(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates the cache directory if needed.
func (s *CacheStore) Open() error {
	if s.dir == "" {
		return scaladoc.Errorf(scaladoc.ECACHEDIR, "cache directory required")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return scaladoc.Errorf(scaladoc.ECACHEDIR, "create cache directory %q: %v", s.dir, err)
	}
	return nil
}

// Dir returns the cache directory.
func (s *CacheStore) Dir() string {
	return s.dir
}

// LocalSourceID returns the stable cache id of a local docs directory.
func LocalSourceID(dir string) string {
	return fmt.Sprintf("%s%016x", scaladoc.LocalSourcePrefix, xxhash.Sum64String(dir))
}

// OfficialSource returns the source for the documentation site at home.
func (s *CacheStore) OfficialSource(home string) *scaladoc.CacheSource {
	home = strings.TrimSuffix(home, "/")
	return &scaladoc.CacheSource{
		ID:        scaladoc.OfficialSourceID,
		Kind:      scaladoc.SourceOfficial,
		Origin:    home,
		Index:     home + "/index.html",
		CachePath: filepath.Join(s.dir, scaladoc.OfficialSourceID),
	}
}

// LocalSource returns the source for a local docs directory.
// The directory should be absolute; its id is derived from the path as given.
func (s *CacheStore) LocalSource(dir string) *scaladoc.CacheSource {
	dir = filepath.Clean(dir)
	id := LocalSourceID(dir)
	return &scaladoc.CacheSource{
		ID:        id,
		Kind:      scaladoc.SourceLocal,
		Origin:    "file://" + filepath.ToSlash(dir),
		Index:     filepath.Join(dir, "index.html"),
		Dir:       dir,
		CachePath: filepath.Join(s.dir, id),
	}
}

// EnsureFresh rebuilds the source's cache file when it is missing or stale.
func (s *CacheStore) EnsureFresh(ctx context.Context, src *scaladoc.CacheSource) (bool, error) {
	switch src.Kind {
	case scaladoc.SourceLocal:
		return s.ensureLocal(ctx, src)
	default:
		return s.ensureOfficial(ctx, src)
	}
}

func (s *CacheStore) ensureOfficial(ctx context.Context, src *scaladoc.CacheSource) (bool, error) {
	info, err := os.Stat(src.CachePath)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if err == nil && s.now().Sub(info.ModTime()) <= s.ttl {
		return true, nil
	}

	if s.remote == nil {
		return false, scaladoc.Errorf(scaladoc.EFETCH, "no fetcher for %s", src.Index)
	}
	if err := s.rebuild(ctx, s.remote, src); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CacheStore) ensureLocal(ctx context.Context, src *scaladoc.CacheSource) (bool, error) {
	if _, err := os.Stat(src.Index); err != nil {
		if err := removeIfExists(src.CachePath); err != nil {
			return false, err
		}
		return false, nil
	}

	dirInfo, err := os.Stat(src.Dir)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(src.CachePath)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if err == nil && !info.ModTime().Before(dirInfo.ModTime()) {
		// Still in use: keep it away from PruneStale.
		now := s.now()
		if err := os.Chtimes(src.CachePath, now, now); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := s.rebuild(ctx, s.local, src); err != nil {
		return false, err
	}
	return true, nil
}

// rebuild writes a fresh cache next to the old one and renames it into place,
// so readers never see a partial file.
func (s *CacheStore) rebuild(ctx context.Context, fetcher scaladoc.IndexFetcher, src *scaladoc.CacheSource) error {
	links, err := fetcher.FetchIndex(ctx, src.Index)
	if err != nil {
		return err
	}

	tmpPath := filepath.Join(s.dir, src.ID+"."+uuid.New().String()+".tmp")
	if err := writeCache(tmpPath, links); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write cache %s: %w", src.ID, err)
	}

	if err := os.Rename(tmpPath, src.CachePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace cache %s: %w", src.ID, err)
	}

	// Stamp with the store clock so TTL checks agree with it.
	now := s.now()
	return os.Chtimes(src.CachePath, now, now)
}

func writeCache(path string, links []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	n := scaladoc.NewNormalizer(w)
	for _, link := range links {
		if err := n.Add(link); err != nil {
			f.Close()
			return err
		}
	}
	if err := n.Close(); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PruneStale deletes local caches whose mtime is older than the TTL.
// The official cache is never pruned; it is refreshed instead.
func (s *CacheStore) PruneStale() error {
	paths, err := filepath.Glob(filepath.Join(s.dir, scaladoc.LocalSourcePrefix+"*"))
	if err != nil {
		return err
	}

	cutoff := s.now().Add(-s.ttl)
	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return err
		}
		if info.IsDir() || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := removeIfExists(path); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the cache lines of the source in file order.
func (s *CacheStore) Lines(src *scaladoc.CacheSource) ([]string, error) {
	f, err := os.Open(src.CachePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

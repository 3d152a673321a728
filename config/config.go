// Package config loads scaladoc settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/fwojciec/scaladoc"
)

// Defaults applied to settings missing from the file.
const (
	DefaultCacheTTLDays        = 15
	DefaultFetchTimeoutSeconds = 10
)

// Config holds user settings.
type Config struct {
	CacheDir            string   `toml:"cache_dir"`
	CacheTTLDays        int      `toml:"cache_ttl_days"`
	DocPaths            []string `toml:"doc_paths"`
	OfficialURL         string   `toml:"official_url"`
	FetchTimeoutSeconds int      `toml:"fetch_timeout_seconds"`
	StrictLinks         bool     `toml:"strict_links"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		CacheDir:            DefaultCacheDir(),
		CacheTTLDays:        DefaultCacheTTLDays,
		OfficialURL:         scaladoc.OfficialHome,
		FetchTimeoutSeconds: DefaultFetchTimeoutSeconds,
	}
}

// DefaultPath returns $SCALADOC_CONFIG, or ~/.scaladoc/config.toml.
func DefaultPath() string {
	if path := os.Getenv("SCALADOC_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".scaladoc", "config.toml")
}

// DefaultCacheDir returns the per-user cache directory for scaladoc.
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "scaladoc")
	}
	return filepath.Join(dir, "scaladoc")
}

// Load reads the config file at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, scaladoc.Errorf(scaladoc.EINVALID, "parse config %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the config contains invalid values.
func (c *Config) Validate() error {
	if c.CacheDir == "" {
		return scaladoc.Errorf(scaladoc.EINVALID, "cache_dir required")
	}
	if c.CacheTTLDays <= 0 {
		return scaladoc.Errorf(scaladoc.EINVALID, "cache_ttl_days must be positive, got %d", c.CacheTTLDays)
	}
	if c.OfficialURL == "" {
		return scaladoc.Errorf(scaladoc.EINVALID, "official_url required")
	}
	if c.FetchTimeoutSeconds <= 0 {
		return scaladoc.Errorf(scaladoc.EINVALID, "fetch_timeout_seconds must be positive, got %d", c.FetchTimeoutSeconds)
	}
	return nil
}

// CacheTTL returns the TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLDays) * 24 * time.Hour
}

// FetchTimeout returns the fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

package main

import (
	"context"
	"io"

	"github.com/fwojciec/scaladoc"
	"github.com/fwojciec/scaladoc/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Searcher scaladoc.Searcher
	Opener   scaladoc.Opener
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Keywords []string `arg:"" required:"" help:"Keywords; the last one names the page, earlier ones narrow the package path"`
	File     string   `short:"f" help:"File the lookup is made from; its project's docs are searched too (default: working directory)"`
	DocPath  []string `short:"d" name:"doc-path" help:"Additional local docs directory (repeatable)"`
	CacheDir string   `name:"cache-dir" env:"SCALADOC_CACHE_DIR" help:"Directory for index caches"`
	TTL      int      `name:"ttl" help:"Days before the official index is refreshed"`
	Strict   bool     `short:"s" help:"Only take links from parsed HTML elements"`
	NoOpen   bool     `short:"n" name:"no-open" help:"Print matches without opening a browser"`
	Verbose  bool     `short:"v" help:"Log cache and fetch activity"`
	Config   string   `short:"c" help:"Config file (default: ~/.scaladoc/config.toml)"`
}

// apply overrides config values with flags that were set.
func (c *CLI) apply(cfg *config.Config) {
	if c.CacheDir != "" {
		cfg.CacheDir = c.CacheDir
	}
	if c.TTL != 0 {
		cfg.CacheTTLDays = c.TTL
	}
	if c.Strict {
		cfg.StrictLinks = true
	}
	cfg.DocPaths = append(cfg.DocPaths, c.DocPath...)
}

// SearchCmd looks up keywords and opens the best match.
type SearchCmd struct {
	Keywords []string
	File     string
	DocPaths []string
	NoOpen   bool
}

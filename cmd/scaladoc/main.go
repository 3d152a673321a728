package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scaladoc"
	"github.com/fwojciec/scaladoc/browser"
	"github.com/fwojciec/scaladoc/config"
	"github.com/fwojciec/scaladoc/fs"
	"github.com/fwojciec/scaladoc/goquery"
	scaladochttp "github.com/fwojciec/scaladoc/http"
	"github.com/fwojciec/scaladoc/search"
	scaladocslog "github.com/fwojciec/scaladoc/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if scaladoc.ErrorCode(err) != scaladoc.ENOTFOUND {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Overridden by --config.
	ConfigPath string

	// Opener launches the browser.
	Opener scaladoc.Opener
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: config.DefaultPath(),
		Opener:     browser.NewOpener(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scaladoc"),
		kong.Description("Open Scala API documentation by keyword, e.g. 'scaladoc im queue'"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no keywords provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cli.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	// Wire dependencies
	var extractor scaladoc.LinkExtractor = scaladoc.HrefScanner{}
	if cfg.StrictLinks {
		extractor = goquery.NewAnchorExtractor()
	}
	remote := scaladochttp.NewIndexFetcher(
		scaladochttp.WithTimeout(cfg.FetchTimeout()),
		scaladochttp.WithExtractor(extractor),
	)
	local := fs.NewIndexFetcher(fs.WithExtractor(extractor))

	store := fs.NewCacheStore(cfg.CacheDir,
		fs.WithTTL(cfg.CacheTTL()),
		fs.WithRemoteFetcher(scaladocslog.NewLoggingFetcher(remote, logger)),
		fs.WithLocalFetcher(scaladocslog.NewLoggingFetcher(local, logger)),
	)
	if err := store.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SCALADOC_CACHE_DIR or --cache-dir to use a different cache directory\n")
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Searcher: &search.Searcher{
			Store:        scaladocslog.NewLoggingStore(store, logger),
			Locator:      fs.NewLocator(),
			OfficialHome: cfg.OfficialURL,
		},
		Opener: m.Opener,
	}

	file := cli.File
	if file == "" {
		if file, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	cmd := &SearchCmd{
		Keywords: cli.Keywords,
		File:     file,
		DocPaths: cfg.DocPaths,
		NoOpen:   cli.NoOpen,
	}
	return cmd.Run(deps)
}

// newLogger returns a text logger on w. Only warnings are shown unless verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

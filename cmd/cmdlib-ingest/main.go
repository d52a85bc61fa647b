// Command cmdlib-ingest builds the catalog database from a manifest of
// man-page URLs. It is the offline counterpart of cmdlibd: it owns the only
// write path to the database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dockers-x/LinuxCommandLibrary/goquery"
	"github.com/dockers-x/LinuxCommandLibrary/htmltomarkdown"
	"github.com/dockers-x/LinuxCommandLibrary/ingest"
	"github.com/dockers-x/LinuxCommandLibrary/sqlite"
)

// CLI defines the ingest tool's flags and environment bindings.
type CLI struct {
	Manifest    string  `arg:"" help:"Manifest file: one 'name<TAB>category<TAB>url' entry per line." type:"existingfile"`
	DB          string  `help:"Path to the catalog database file to build." env:"CMDLIB_DB" default:"commands.db"`
	Concurrency int     `help:"Number of pages fetched in parallel." env:"CMDLIB_CONCURRENCY" default:"8"`
	RPS         float64 `help:"Per-host request rate limit." env:"CMDLIB_RPS" default:"2"`
	LogLevel    string  `help:"Log verbosity (debug, info, warn, error)." env:"CMDLIB_LOG_LEVEL" default:"info" enum:"debug,info,warn,error"`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli, kong.Name("cmdlib-ingest"), kong.Description("Build the Linux command catalog database from man-page sources."))

	if err := run(cli); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cli *CLI) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cli.LogLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	f, err := os.Open(cli.Manifest)
	if err != nil {
		return fmt.Errorf("failed to open manifest %q: %w", cli.Manifest, err)
	}
	entries, err := ingest.ParseManifest(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to parse manifest %q: %w", cli.Manifest, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("manifest %q has no entries", cli.Manifest)
	}

	db := sqlite.NewDB(cli.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer db.Close()

	loader := sqlite.NewLoader(db)
	if err := loader.CreateSchema(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	ing := &ingest.Ingester{
		Fetcher:     ingest.NewFetcher(),
		Parser:      goquery.NewManPageParser(),
		Converter:   htmltomarkdown.NewConverter(),
		Loader:      loader,
		Limiter:     ingest.NewHostRateLimiter(cli.RPS),
		Concurrency: cli.Concurrency,
		OnError: func(entry ingest.Entry, err error) {
			logger.Warn("entry failed", "name", entry.Name, "url", entry.URL, "error", err)
		},
	}

	logger.Info("ingest started", "entries", len(entries), "db", cli.DB, "concurrency", cli.Concurrency)
	start := time.Now()

	result, err := ing.Run(ctx, entries)
	if err != nil {
		return fmt.Errorf("ingest aborted: %w", err)
	}

	logger.Info("ingest finished",
		"loaded", result.Loaded,
		"failed", result.Failed,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

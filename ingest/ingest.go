// Package ingest provides catalog build orchestration. It coordinates
// fetching rendered man pages, splitting them into sections, converting the
// section bodies to markdown, and loading the result into the catalog
// database. The serving process never runs any of this; ingest is the
// external data-preparation step the catalog ships from.
package ingest

import (
	"context"
	"encoding/hex"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
	"github.com/dockers-x/LinuxCommandLibrary/sqlite"
	"golang.org/x/sync/errgroup"
)

// Entry is one manifest line: a command to ingest.
type Entry struct {
	Name     string
	Category int64
	URL      string
}

// Result holds the outcome of an ingest run.
type Result struct {
	Loaded int
	Failed int
}

// Ingester orchestrates a catalog build.
type Ingester struct {
	Fetcher     cmdlib.PageFetcher
	Parser      cmdlib.SectionParser
	Converter   cmdlib.Converter
	Loader      *sqlite.Loader
	Limiter     cmdlib.HostLimiter
	Concurrency int

	// OnError, if set, is called for each entry that fails. Failures do
	// not abort the run; the entry is counted and skipped.
	OnError func(entry Entry, err error)
}

// Run ingests all entries and reports how many loaded. It returns an error
// only when the context is canceled or the database rejects writes.
func (ing *Ingester) Run(ctx context.Context, entries []Entry) (*Result, error) {
	concurrency := ing.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	var loaded, failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, entry := range entries {
		g.Go(func() error {
			if err := ing.ingestOne(ctx, entry); err != nil {
				if ctx.Err() != nil {
					return err
				}
				failed.Add(1)
				if ing.OnError != nil {
					ing.OnError(entry, err)
				}
				return nil
			}
			loaded.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Loaded: int(loaded.Load()), Failed: int(failed.Load())}, nil
}

// ingestOne fetches, parses, converts, and stores a single command.
func (ing *Ingester) ingestOne(ctx context.Context, entry Entry) error {
	if ing.Limiter != nil {
		if err := ing.Limiter.Wait(ctx, hostOf(entry.URL)); err != nil {
			return err
		}
	}

	html, err := ing.Fetcher.Fetch(ctx, entry.URL)
	if err != nil {
		return err
	}

	manSections, err := ing.Parser.Parse(html)
	if err != nil {
		return err
	}

	type converted struct {
		title    string
		markdown string
	}
	sections := make([]converted, 0, len(manSections))
	description := ""

	for _, section := range manSections {
		markdown, err := ing.Converter.Convert(section.HTML)
		if err != nil {
			return err
		}
		if section.Title == "NAME" && description == "" {
			description = descriptionFrom(markdown)
		}
		sections = append(sections, converted{title: section.Title, markdown: markdown})
	}

	cmd := &cmdlib.Command{
		Name:        entry.Name,
		Category:    entry.Category,
		Description: description,
	}
	if err := ing.Loader.InsertCommand(ctx, cmd); err != nil {
		return err
	}
	for i, section := range sections {
		if err := ing.Loader.InsertSection(ctx, cmd.ID, section.title, section.markdown, hashContent(section.markdown), i); err != nil {
			return err
		}
	}

	return nil
}

// descriptionFrom extracts the short description from a NAME section, which
// conventionally reads "name - description".
func descriptionFrom(markdown string) string {
	line := markdown
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if _, after, ok := strings.Cut(line, " - "); ok {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(line)
}

// hostOf returns the host part of a URL for rate limiting. Malformed URLs
// fall into one shared bucket; the fetch will report the real error.
func hostOf(rawURL string) string {
	rest, ok := strings.CutPrefix(rawURL, "https://")
	if !ok {
		rest, _ = strings.CutPrefix(rawURL, "http://")
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// hashContent computes xxHash of content and returns a hex string. Builds
// compare hashes to spot changed sections between catalog versions.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

package cmdlib

import (
	"context"
	"encoding/json"
)

// Command represents a single entry in the command catalog. Category holds
// the numeric code; the JSON representation carries the display name
// instead (see MarshalJSON).
type Command struct {
	ID          int64
	Name        string
	Category    int64
	Description string
}

// MarshalJSON renders the command with its category code translated to a
// display name (unknown codes degrade to UncategorizedLabel).
func (c *Command) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Category    string `json:"category"`
		Description string `json:"description"`
	}{c.ID, c.Name, CategoryName(c.Category), c.Description})
}

// CommandSection represents one manual-page section of a command, such as
// SYNOPSIS, OPTIONS, or TLDR. Sections keep the order assigned by the
// catalog build.
type CommandSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CommandDetail is a command together with its ordered sections. The NAME
// section is omitted; the TLDR section, when present, is additionally
// surfaced through the Tldr field.
type CommandDetail struct {
	ID          int64
	Name        string
	Category    int64
	Description string
	Sections    []CommandSection
	Tldr        string
}

// MarshalJSON renders the detail payload with the translated category name
// and omits the tldr field when no TLDR section exists.
func (d *CommandDetail) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          int64            `json:"id"`
		Name        string           `json:"name"`
		Category    string           `json:"category"`
		Description string           `json:"description"`
		Sections    []CommandSection `json:"sections"`
		Tldr        string           `json:"tldr,omitempty"`
	}{d.ID, d.Name, CategoryName(d.Category), d.Description, d.Sections, d.Tldr})
}

// Search limits. Callers may request fewer results than DefaultSearchLimit
// but never more than MaxSearchLimit.
const (
	DefaultSearchLimit = 50
	MaxSearchLimit     = 100
	SuggestionLimit    = 10
)

// CommandService represents a service for reading the command catalog.
type CommandService interface {
	// FindCommandByID retrieves a command with its ordered sections.
	// Returns ENOTFOUND if no command has the given id.
	FindCommandByID(ctx context.Context, id int64) (*CommandDetail, error)

	// FindCommands retrieves the full catalog ordered by name.
	FindCommands(ctx context.Context) ([]*Command, error)

	// SearchCommands matches q as a case-insensitive substring against
	// command names and descriptions. Exact name matches rank first, then
	// name prefixes, then name substrings, then description matches;
	// alphabetical within each band. A blank q yields an empty result.
	SearchCommands(ctx context.Context, q string, limit int) ([]*Command, error)

	// SuggestCommands returns distinct command names matching q as a
	// case-insensitive prefix, ordered by name. A blank q yields an empty
	// result.
	SuggestCommands(ctx context.Context, q string, limit int) ([]string, error)

	// PopularCommands retrieves catalog rows for the given curated names,
	// preserving list order. Names absent from the catalog are skipped.
	PopularCommands(ctx context.Context, names []string) ([]*Command, error)
}

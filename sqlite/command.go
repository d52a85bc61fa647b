package sqlite

import (
	"context"
	"database/sql"
	"strings"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

// Compile-time interface verification.
var _ cmdlib.CommandService = (*CommandService)(nil)

// CommandService implements cmdlib.CommandService using SQLite.
type CommandService struct {
	db *DB
}

// NewCommandService creates a new CommandService.
func NewCommandService(db *DB) *CommandService {
	return &CommandService{db: db}
}

// storageErr wraps a driver failure as EUNAVAILABLE so callers can tell
// "store broken" apart from "row missing". The driver detail stays in the
// message for logging; the HTTP layer hides it from clients.
func storageErr(err error) error {
	return cmdlib.Errorf(cmdlib.EUNAVAILABLE, "storage unavailable: %v", err)
}

// FindCommandByID retrieves a command with its ordered sections.
func (s *CommandService) FindCommandByID(ctx context.Context, id int64) (*cmdlib.CommandDetail, error) {
	var detail cmdlib.CommandDetail

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, category, description
		FROM Command
		WHERE id = ?
	`, id).Scan(&detail.ID, &detail.Name, &detail.Category, &detail.Description)

	if err == sql.ErrNoRows {
		return nil, cmdlib.Errorf(cmdlib.ENOTFOUND, "command not found")
	}
	if err != nil {
		return nil, storageErr(err)
	}

	// Sections keep their stored order. The NAME section duplicates the
	// name/description pair and is excluded from the payload.
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, content
		FROM CommandSection
		WHERE command_id = ? AND title <> 'NAME'
		ORDER BY position, id
	`, detail.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	detail.Sections = []cmdlib.CommandSection{}
	for rows.Next() {
		var section cmdlib.CommandSection
		if err := rows.Scan(&section.Title, &section.Content); err != nil {
			return nil, storageErr(err)
		}
		if section.Title == "TLDR" {
			detail.Tldr = section.Content
		}
		detail.Sections = append(detail.Sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}

	return &detail, nil
}

// FindCommands retrieves the full catalog ordered by name.
func (s *CommandService) FindCommands(ctx context.Context) ([]*cmdlib.Command, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, description
		FROM Command
		ORDER BY name
	`)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	return scanCommands(rows)
}

// SearchCommands matches q against names and descriptions, most relevant
// first. A blank q yields an empty result rather than the full catalog.
func (s *CommandService) SearchCommands(ctx context.Context, q string, limit int) ([]*cmdlib.Command, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []*cmdlib.Command{}, nil
	}
	limit = clampLimit(limit, cmdlib.DefaultSearchLimit)

	prefix := q + "%"
	contains := "%" + q + "%"

	// Relevance bands: exact name, name prefix, name substring, description
	// prefix, description substring. LIKE is case-insensitive for ASCII.
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, description,
		       CASE
		           WHEN lower(name) = lower(?) THEN 100
		           WHEN name LIKE ? THEN 50
		           WHEN name LIKE ? THEN 30
		           WHEN description LIKE ? THEN 20
		           ELSE 10
		       END AS relevance
		FROM Command
		WHERE name LIKE ? OR description LIKE ?
		ORDER BY relevance DESC, name ASC
		LIMIT ?
	`, q, prefix, contains, prefix, contains, contains, limit)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	commands := []*cmdlib.Command{}
	for rows.Next() {
		var cmd cmdlib.Command
		var relevance int
		if err := rows.Scan(&cmd.ID, &cmd.Name, &cmd.Category, &cmd.Description, &relevance); err != nil {
			return nil, storageErr(err)
		}
		commands = append(commands, &cmd)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}

	return commands, nil
}

// SuggestCommands returns distinct names matching q as a prefix.
func (s *CommandService) SuggestCommands(ctx context.Context, q string, limit int) ([]string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []string{}, nil
	}
	limit = clampLimit(limit, cmdlib.SuggestionLimit)

	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT name
		FROM Command
		WHERE name LIKE ?
		ORDER BY name
		LIMIT ?
	`, q+"%", limit)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storageErr(err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}

	return names, nil
}

// PopularCommands retrieves catalog rows for the curated names, preserving
// the list order. Names absent from the catalog are skipped.
func (s *CommandService) PopularCommands(ctx context.Context, names []string) ([]*cmdlib.Command, error) {
	if len(names) == 0 {
		return []*cmdlib.Command{}, nil
	}

	placeholders := strings.Repeat("?,", len(names))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, len(names))
	for i, name := range names {
		args[i] = name
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, description
		FROM Command
		WHERE name IN (`+placeholders+`)
	`, args...)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	found, err := scanCommands(rows)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*cmdlib.Command, len(found))
	for _, cmd := range found {
		if _, ok := byName[cmd.Name]; !ok {
			byName[cmd.Name] = cmd
		}
	}

	commands := []*cmdlib.Command{}
	for _, name := range names {
		if cmd, ok := byName[name]; ok {
			commands = append(commands, cmd)
		}
	}

	return commands, nil
}

// clampLimit applies the default when limit is unset and the hard cap
// otherwise.
func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > cmdlib.MaxSearchLimit {
		return cmdlib.MaxSearchLimit
	}
	return limit
}

// scanCommands drains rows of (id, name, category, description).
func scanCommands(rows *sql.Rows) ([]*cmdlib.Command, error) {
	commands := []*cmdlib.Command{}
	for rows.Next() {
		var cmd cmdlib.Command
		if err := rows.Scan(&cmd.ID, &cmd.Name, &cmd.Category, &cmd.Description); err != nil {
			return nil, storageErr(err)
		}
		commands = append(commands, &cmd)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return commands, nil
}

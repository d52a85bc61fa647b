package sqlite

import (
	"context"
	"database/sql"
	"strings"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

// Compile-time interface verification.
var _ cmdlib.CategoryService = (*CategoryService)(nil)

// CategoryService implements cmdlib.CategoryService using SQLite.
type CategoryService struct {
	db *DB
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(db *DB) *CategoryService {
	return &CategoryService{db: db}
}

// CategoryTitles retrieves all basic category titles ordered by position.
func (s *CategoryService) CategoryTitles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title
		FROM BasicCategory
		ORDER BY position
	`)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, storageErr(err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}

	return titles, nil
}

// DetailedCategories retrieves all basic categories ordered by position,
// annotated with static descriptions. Icons are left empty; the frontend
// supplies its own icon set.
func (s *CategoryService) DetailedCategories(ctx context.Context) ([]*cmdlib.BasicCategory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, position
		FROM BasicCategory
		ORDER BY position
	`)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	categories := []*cmdlib.BasicCategory{}
	for rows.Next() {
		var cat cmdlib.BasicCategory
		if err := rows.Scan(&cat.ID, &cat.Title, &cat.Position); err != nil {
			return nil, storageErr(err)
		}
		cat.Description = cmdlib.CategoryDescription(cat.Title)
		categories = append(categories, &cat)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}

	return categories, nil
}

// FindCommandsByCategory retrieves the commands grouped under the basic
// category with the given title. The title match is case-insensitive; an
// unknown title yields an empty result.
func (s *CategoryService) FindCommandsByCategory(ctx context.Context, title string) ([]*cmdlib.Command, error) {
	var categoryID int64

	err := s.db.QueryRowContext(ctx, `
		SELECT id
		FROM BasicCategory
		WHERE title = ? COLLATE NOCASE
	`, title).Scan(&categoryID)

	if err == sql.ErrNoRows {
		return []*cmdlib.Command{}, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT bc.id, bc.command, bg.description
		FROM BasicCommand bc
		JOIN BasicGroup bg ON bc.group_id = bg.id
		WHERE bg.category_id = ?
		ORDER BY bc.command
	`, categoryID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	commands := []*cmdlib.Command{}
	for rows.Next() {
		var cmd cmdlib.Command
		var raw string
		if err := rows.Scan(&cmd.ID, &raw, &cmd.Description); err != nil {
			return nil, storageErr(err)
		}
		// Basic command entries may hold a multi-line example; only the
		// first line is the name. Category code 0 marks taxonomy entries.
		cmd.Name = firstLine(raw)
		commands = append(commands, &cmd)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}

	return commands, nil
}

// Stats retrieves aggregate catalog counts. The category count reports the
// basic taxonomy size, which is what the frontend displays.
func (s *CategoryService) Stats(ctx context.Context) (*cmdlib.Stats, error) {
	var stats cmdlib.Stats

	counts := []struct {
		query string
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM Command", &stats.TotalCommands},
		{"SELECT COUNT(*) FROM Tip", &stats.TotalTips},
		{"SELECT COUNT(*) FROM BasicCategory", &stats.TotalBasicCategories},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, storageErr(err)
		}
	}
	stats.TotalCategories = stats.TotalBasicCategories

	return &stats, nil
}

// firstLine returns s up to the first newline, trimmed.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

package cmdlib

import "context"

// BasicCategory is one entry of the beginner-oriented taxonomy. It is
// separate from the numeric category codes on Command rows; a category
// groups BasicGroup rows which in turn group BasicCommand rows.
type BasicCategory struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Position    int64  `json:"position"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Stats holds aggregate catalog counts.
type Stats struct {
	TotalCommands        int64 `json:"total_commands"`
	TotalCategories      int64 `json:"total_categories"`
	TotalTips            int64 `json:"total_tips"`
	TotalBasicCategories int64 `json:"total_basic_categories"`
}

// CategoryService represents a service for reading the basic taxonomy.
type CategoryService interface {
	// CategoryTitles retrieves all basic category titles ordered by
	// position.
	CategoryTitles(ctx context.Context) ([]string, error)

	// DetailedCategories retrieves all basic categories ordered by
	// position, annotated with static descriptions where one exists.
	DetailedCategories(ctx context.Context) ([]*BasicCategory, error)

	// FindCommandsByCategory retrieves the commands grouped under the
	// basic category with the given title (case-insensitive). An unknown
	// title yields an empty result, not an error.
	FindCommandsByCategory(ctx context.Context, title string) ([]*Command, error)

	// Stats retrieves aggregate catalog counts.
	Stats(ctx context.Context) (*Stats, error)
}

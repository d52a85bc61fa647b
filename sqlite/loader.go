package sqlite

import (
	"context"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

// Loader owns the write side of the catalog: schema creation and row
// inserts. Only the ingest tool and tests use it; the serving process opens
// the catalog read-only and never links a write path into its runtime.
type Loader struct {
	db *DB
}

// NewLoader creates a new Loader.
func NewLoader(db *DB) *Loader {
	return &Loader{db: db}
}

// CreateSchema creates the catalog tables if they don't exist.
func (l *Loader) CreateSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS Command (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS CommandSection (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			command_id INTEGER NOT NULL REFERENCES Command(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS Tip (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS TipSection (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tip_id INTEGER NOT NULL REFERENCES Tip(id) ON DELETE CASCADE,
			position INTEGER NOT NULL DEFAULT 0,
			type INTEGER NOT NULL DEFAULT 0,
			data1 TEXT NOT NULL DEFAULT '',
			data2 TEXT NOT NULL DEFAULT '',
			extra TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS BasicCategory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			position INTEGER NOT NULL DEFAULT 0,
			title TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS BasicGroup (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id INTEGER NOT NULL REFERENCES BasicCategory(id) ON DELETE CASCADE,
			description TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS BasicCommand (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			group_id INTEGER NOT NULL REFERENCES BasicGroup(id) ON DELETE CASCADE,
			command TEXT NOT NULL,
			mans TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_command_name ON Command(name);
		CREATE INDEX IF NOT EXISTS idx_commandsection_command_id ON CommandSection(command_id);
		CREATE INDEX IF NOT EXISTS idx_tipsection_tip_id ON TipSection(tip_id);
		CREATE INDEX IF NOT EXISTS idx_basicgroup_category_id ON BasicGroup(category_id);
		CREATE INDEX IF NOT EXISTS idx_basiccommand_group_id ON BasicCommand(group_id);
	`

	if _, err := l.db.ExecContext(ctx, schema); err != nil {
		return storageErr(err)
	}
	return nil
}

// InsertCommand inserts a catalog entry and sets cmd.ID.
func (l *Loader) InsertCommand(ctx context.Context, cmd *cmdlib.Command) error {
	result, err := l.db.ExecContext(ctx, `
		INSERT INTO Command (category, name, description)
		VALUES (?, ?, ?)
	`, cmd.Category, cmd.Name, cmd.Description)
	if err != nil {
		return storageErr(err)
	}

	cmd.ID, err = result.LastInsertId()
	if err != nil {
		return storageErr(err)
	}
	return nil
}

// InsertSection inserts one section of a command. Position fixes the
// section order served later.
func (l *Loader) InsertSection(ctx context.Context, commandID int64, title, content, contentHash string, position int) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO CommandSection (command_id, title, content, content_hash, position)
		VALUES (?, ?, ?, ?, ?)
	`, commandID, title, content, contentHash, position)
	if err != nil {
		return storageErr(err)
	}
	return nil
}

// InsertTip inserts a tip and sets tip.ID. Sections on the tip are
// inserted with positions matching their slice order.
func (l *Loader) InsertTip(ctx context.Context, tip *cmdlib.Tip) error {
	result, err := l.db.ExecContext(ctx, `
		INSERT INTO Tip (title, position) VALUES (?, 0)
	`, tip.Title)
	if err != nil {
		return storageErr(err)
	}

	tip.ID, err = result.LastInsertId()
	if err != nil {
		return storageErr(err)
	}

	for i, section := range tip.Sections {
		_, err := l.db.ExecContext(ctx, `
			INSERT INTO TipSection (tip_id, position, type, data1, data2, extra)
			VALUES (?, ?, ?, ?, ?, ?)
		`, tip.ID, i, section.Type, section.Data1, section.Data2, section.Extra)
		if err != nil {
			return storageErr(err)
		}
	}
	return nil
}

// InsertBasicCategory inserts a taxonomy category and returns its id.
func (l *Loader) InsertBasicCategory(ctx context.Context, title string, position int) (int64, error) {
	result, err := l.db.ExecContext(ctx, `
		INSERT INTO BasicCategory (position, title) VALUES (?, ?)
	`, position, title)
	if err != nil {
		return 0, storageErr(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageErr(err)
	}
	return id, nil
}

// InsertBasicGroup inserts a taxonomy group and returns its id.
func (l *Loader) InsertBasicGroup(ctx context.Context, categoryID int64, description string) (int64, error) {
	result, err := l.db.ExecContext(ctx, `
		INSERT INTO BasicGroup (category_id, description) VALUES (?, ?)
	`, categoryID, description)
	if err != nil {
		return 0, storageErr(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageErr(err)
	}
	return id, nil
}

// InsertBasicCommand inserts a taxonomy leaf entry.
func (l *Loader) InsertBasicCommand(ctx context.Context, groupID int64, command, mans string) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO BasicCommand (group_id, command, mans) VALUES (?, ?, ?)
	`, groupID, command, mans)
	if err != nil {
		return storageErr(err)
	}
	return nil
}

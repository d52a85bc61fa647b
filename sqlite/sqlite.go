// Package sqlite provides SQLite-based storage implementations for cmdlib
// services. The serving process opens the catalog read-only; the write path
// (Loader) exists only for the ingest tool and tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// requiredTables is the schema the catalog build produces. VerifySchema
// checks for their presence before the server accepts traffic.
var requiredTables = []string{
	"Command",
	"CommandSection",
	"Tip",
	"TipSection",
	"BasicCategory",
	"BasicGroup",
	"BasicCommand",
}

// DB represents a SQLite database connection.
type DB struct {
	db       *sql.DB
	path     string
	readOnly bool
}

// NewDB creates a new read-write DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// NewReadOnlyDB creates a DB instance that opens the file read-only. The
// serving process uses this mode; it guarantees no runtime write path.
func NewReadOnlyDB(path string) *DB {
	return &DB{path: path, readOnly: true}
}

// Open opens the database connection.
func (db *DB) Open() error {
	dsn := db.path
	if db.readOnly {
		dsn = "file:" + db.path + "?mode=ro"
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so a writable handle is
	// limited to one connection. Read-only handles may pool freely.
	if !db.readOnly {
		conn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	// This prevents immediate "database is locked" errors.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if !db.readOnly {
		// Enable WAL mode for file-based databases for better write
		// performance during catalog builds. WAL is not supported for
		// in-memory databases.
		if db.path != ":memory:" {
			if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
				conn.Close()
				return fmt.Errorf("failed to enable WAL mode: %w", err)
			}
		}

		// Enable foreign key constraints
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	db.db = conn
	return nil
}

// VerifySchema checks that every catalog table exists. The server runs this
// once at startup; a missing table is fatal.
func (db *DB) VerifySchema(ctx context.Context) error {
	for _, table := range requiredTables {
		var n int
		err := db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
			table,
		).Scan(&n)
		if err != nil {
			return fmt.Errorf("failed to check table %q: %w", table, err)
		}
		if n == 0 {
			return cmdlib.Errorf(cmdlib.EUNAVAILABLE, "catalog table %q missing; not a valid catalog database", table)
		}
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// Stats returns database statistics.
func (db *DB) Stats() sql.DBStats {
	return db.db.Stats()
}

package sqlite

import (
	"context"
	"database/sql"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

// Compile-time interface verification.
var _ cmdlib.TipService = (*TipService)(nil)

// TipService implements cmdlib.TipService using SQLite.
type TipService struct {
	db *DB
}

// NewTipService creates a new TipService.
func NewTipService(db *DB) *TipService {
	return &TipService{db: db}
}

// RandomTip retrieves one uniformly selected tip with its sections.
func (s *TipService) RandomTip(ctx context.Context) (*cmdlib.Tip, error) {
	var tip cmdlib.Tip

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title
		FROM Tip
		ORDER BY RANDOM()
		LIMIT 1
	`).Scan(&tip.ID, &tip.Title)

	if err == sql.ErrNoRows {
		return nil, cmdlib.Errorf(cmdlib.ENOTFOUND, "no tips available")
	}
	if err != nil {
		return nil, storageErr(err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT type, data1, data2, extra
		FROM TipSection
		WHERE tip_id = ?
		ORDER BY position
	`, tip.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	tip.Sections = []cmdlib.TipSection{}
	for rows.Next() {
		var section cmdlib.TipSection
		if err := rows.Scan(&section.Type, &section.Data1, &section.Data2, &section.Extra); err != nil {
			return nil, storageErr(err)
		}
		tip.Sections = append(tip.Sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}

	return &tip, nil
}

package sqlite_test

import (
	"context"
	"testing"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
	"github.com/dockers-x/LinuxCommandLibrary/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedTaxonomy creates two basic categories with one group and a few
// commands each.
func seedTaxonomy(t *testing.T, db *sqlite.DB) {
	t.Helper()
	ctx := context.Background()
	loader := sqlite.NewLoader(db)

	networkID, err := loader.InsertBasicCategory(ctx, "Network", 2)
	require.NoError(t, err)
	filesID, err := loader.InsertBasicCategory(ctx, "Files & Folders", 1)
	require.NoError(t, err)

	netGroup, err := loader.InsertBasicGroup(ctx, networkID, "Show IP address")
	require.NoError(t, err)
	require.NoError(t, loader.InsertBasicCommand(ctx, netGroup, "ip addr show\nip -brief addr", "ip"))
	require.NoError(t, loader.InsertBasicCommand(ctx, netGroup, "hostname -I", "hostname"))

	fileGroup, err := loader.InsertBasicGroup(ctx, filesID, "List files")
	require.NoError(t, err)
	require.NoError(t, loader.InsertBasicCommand(ctx, fileGroup, "ls -la", "ls"))
}

func TestCategoryService_CategoryTitles(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	seedTaxonomy(t, db)
	svc := sqlite.NewCategoryService(db)

	titles, err := svc.CategoryTitles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Files & Folders", "Network"}, titles)
}

func TestCategoryService_DetailedCategories(t *testing.T) {
	t.Parallel()

	t.Run("orders by position and annotates descriptions", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		seedTaxonomy(t, db)
		svc := sqlite.NewCategoryService(db)

		categories, err := svc.DetailedCategories(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Files & Folders", categories[0].Title)
		assert.Equal(t, int64(1), categories[0].Position)
		assert.Equal(t, "File and directory operations", categories[0].Description)
		assert.Empty(t, categories[0].Icon)
	})

	t.Run("unknown titles carry no description", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCategoryService(db)
		ctx := context.Background()

		_, err := sqlite.NewLoader(db).InsertBasicCategory(ctx, "Time travel", 1)
		require.NoError(t, err)

		categories, err := svc.DetailedCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Empty(t, categories[0].Description)
	})
}

func TestCategoryService_FindCommandsByCategory(t *testing.T) {
	t.Parallel()

	t.Run("returns commands for a known category ordered by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		seedTaxonomy(t, db)
		svc := sqlite.NewCategoryService(db)

		commands, err := svc.FindCommandsByCategory(context.Background(), "Network")
		require.NoError(t, err)
		require.Len(t, commands, 2)
		assert.Equal(t, "hostname -I", commands[0].Name)
		// Multi-line examples surface only their first line.
		assert.Equal(t, "ip addr show", commands[1].Name)
		assert.Equal(t, "Show IP address", commands[1].Description)
		assert.Equal(t, int64(0), commands[1].Category)
	})

	t.Run("matches titles case-insensitively", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		seedTaxonomy(t, db)
		svc := sqlite.NewCategoryService(db)
		ctx := context.Background()

		lower, err := svc.FindCommandsByCategory(ctx, "network")
		require.NoError(t, err)
		upper, err := svc.FindCommandsByCategory(ctx, "NETWORK")
		require.NoError(t, err)

		require.Len(t, lower, 2)
		require.Len(t, upper, 2)
		for i := range lower {
			assert.Equal(t, lower[i].Name, upper[i].Name)
		}
	})

	t.Run("unknown category yields an empty result, not an error", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		seedTaxonomy(t, db)
		svc := sqlite.NewCategoryService(db)

		commands, err := svc.FindCommandsByCategory(context.Background(), "Quantum")
		require.NoError(t, err)
		assert.Empty(t, commands)
	})
}

func TestCategoryService_Stats(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	seedTaxonomy(t, db)
	svc := sqlite.NewCategoryService(db)
	ctx := context.Background()

	mustInsertCommand(t, db, "ls", 5, "list directory contents")
	mustInsertCommand(t, db, "grep", 11, "print lines matching a pattern")
	require.NoError(t, sqlite.NewLoader(db).InsertTip(ctx, &cmdlib.Tip{Title: "a tip"}))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalCommands)
	assert.Equal(t, int64(1), stats.TotalTips)
	assert.Equal(t, int64(2), stats.TotalBasicCategories)
	assert.Equal(t, stats.TotalBasicCategories, stats.TotalCategories)
}

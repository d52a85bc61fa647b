package sqlite_test

import (
	"context"
	"testing"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
	"github.com/dockers-x/LinuxCommandLibrary/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTipService_RandomTip(t *testing.T) {
	t.Parallel()

	t.Run("returns the tip with sections in position order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTipService(db)
		ctx := context.Background()

		tip := &cmdlib.Tip{
			Title: "Pipe tricks",
			Sections: []cmdlib.TipSection{
				{Type: 0, Data1: "Use | to chain commands"},
				{Type: 1, Data1: "history | grep ssh", Data2: "search shell history"},
			},
		}
		require.NoError(t, sqlite.NewLoader(db).InsertTip(ctx, tip))

		got, err := svc.RandomTip(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Pipe tricks", got.Title)
		require.Len(t, got.Sections, 2)
		assert.Equal(t, "Use | to chain commands", got.Sections[0].Data1)
		assert.Equal(t, "history | grep ssh", got.Sections[1].Data1)
		assert.Equal(t, int64(1), got.Sections[1].Type)
	})

	t.Run("selects among all tips", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTipService(db)
		ctx := context.Background()

		loader := sqlite.NewLoader(db)
		titles := map[string]bool{"a": true, "b": true, "c": true}
		for title := range titles {
			require.NoError(t, loader.InsertTip(ctx, &cmdlib.Tip{Title: title}))
		}

		got, err := svc.RandomTip(ctx)
		require.NoError(t, err)
		assert.True(t, titles[got.Title])
		assert.Empty(t, got.Sections)
	})

	t.Run("returns ENOTFOUND on an empty tip table", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTipService(db)

		_, err := svc.RandomTip(context.Background())
		require.Error(t, err)
		assert.Equal(t, cmdlib.ENOTFOUND, cmdlib.ErrorCode(err))
	})
}

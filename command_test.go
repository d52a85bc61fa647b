package cmdlib_test

import (
	"encoding/json"
	"testing"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("serializes the category as its display name", func(t *testing.T) {
		t.Parallel()

		cmd := &cmdlib.Command{ID: 42, Name: "grep", Category: 11, Description: "print lines matching a pattern"}

		out, err := json.Marshal(cmd)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"id": 42,
			"name": "grep",
			"category": "Search & Find",
			"description": "print lines matching a pattern"
		}`, string(out))
	})

	t.Run("unknown codes serialize as the default label", func(t *testing.T) {
		t.Parallel()

		out, err := json.Marshal(&cmdlib.Command{ID: 1, Name: "mystery", Category: 99})
		require.NoError(t, err)
		assert.Contains(t, string(out), `"category":"Other"`)
	})
}

func TestCommandDetail_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("keeps section order and surfaces tldr", func(t *testing.T) {
		t.Parallel()

		detail := &cmdlib.CommandDetail{
			ID:          42,
			Name:        "grep",
			Category:    11,
			Description: "print lines matching a pattern",
			Sections: []cmdlib.CommandSection{
				{Title: "TLDR", Content: "grep pattern file"},
				{Title: "SYNOPSIS", Content: "grep [OPTION]..."},
			},
			Tldr: "grep pattern file",
		}

		out, err := json.Marshal(detail)
		require.NoError(t, err)

		var decoded struct {
			Category string `json:"category"`
			Sections []struct {
				Title string `json:"title"`
			} `json:"sections"`
			Tldr string `json:"tldr"`
		}
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, "Search & Find", decoded.Category)
		require.Len(t, decoded.Sections, 2)
		assert.Equal(t, "TLDR", decoded.Sections[0].Title)
		assert.Equal(t, "grep pattern file", decoded.Tldr)
	})

	t.Run("omits tldr when absent", func(t *testing.T) {
		t.Parallel()

		out, err := json.Marshal(&cmdlib.CommandDetail{ID: 1, Name: "ls", Category: 5, Sections: []cmdlib.CommandSection{}})
		require.NoError(t, err)
		assert.NotContains(t, string(out), "tldr")
	})
}

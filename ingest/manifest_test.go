package ingest_test

import (
	"strings"
	"testing"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
	"github.com/dockers-x/LinuxCommandLibrary/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	t.Parallel()

	t.Run("parses entries, skipping comments and blanks", func(t *testing.T) {
		t.Parallel()

		manifest := strings.Join([]string{
			"# command catalog manifest",
			"",
			"grep\t11\thttps://man.example/grep.1.html",
			"ls\t5\thttps://man.example/ls.1.html",
		}, "\n")

		entries, err := ingest.ParseManifest(strings.NewReader(manifest))
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, ingest.Entry{Name: "grep", Category: 11, URL: "https://man.example/grep.1.html"}, entries[0])
		assert.Equal(t, ingest.Entry{Name: "ls", Category: 5, URL: "https://man.example/ls.1.html"}, entries[1])
	})

	t.Run("rejects malformed lines with EINVALID", func(t *testing.T) {
		t.Parallel()

		for _, manifest := range []string{
			"grep\t11",
			"grep\televen\thttps://man.example/grep.1.html",
		} {
			_, err := ingest.ParseManifest(strings.NewReader(manifest))
			require.Error(t, err)
			assert.Equal(t, cmdlib.EINVALID, cmdlib.ErrorCode(err))
		}
	})

	t.Run("empty input yields no entries", func(t *testing.T) {
		t.Parallel()

		entries, err := ingest.ParseManifest(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

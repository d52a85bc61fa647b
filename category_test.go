package cmdlib_test

import (
	"testing"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
	"github.com/stretchr/testify/assert"
)

func TestCategoryName(t *testing.T) {
	t.Parallel()

	t.Run("translates known codes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Miscellaneous", cmdlib.CategoryName(1))
		assert.Equal(t, "System control", cmdlib.CategoryName(3))
		assert.Equal(t, "Files & Folders", cmdlib.CategoryName(5))
		assert.Equal(t, "Network", cmdlib.CategoryName(10))
		assert.Equal(t, "Micro Texteditor", cmdlib.CategoryName(23))
	})

	t.Run("unknown codes degrade to the default label, never empty", func(t *testing.T) {
		t.Parallel()

		for _, code := range []int64{0, -1, 24, 99, 1 << 40} {
			name := cmdlib.CategoryName(code)
			assert.Equal(t, cmdlib.UncategorizedLabel, name)
			assert.NotEmpty(t, name)
		}
	})
}

func TestCategoryDescription(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Network configuration and tools", cmdlib.CategoryDescription("Network"))
	assert.Empty(t, cmdlib.CategoryDescription("Time travel"))
}

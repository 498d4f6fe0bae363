package stoplist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoplist(t *testing.T) {
	t.Run("membership", func(t *testing.T) {
		list, err := New([]string{"yang", "di", "dan"})
		require.NoError(t, err)

		assert.True(t, list.Contains("yang"))
		assert.True(t, list.Contains("dan"))
		assert.False(t, list.Contains("makan"))
		assert.False(t, list.Contains(""))
		assert.Equal(t, 3, list.Len())
	})

	t.Run("unsorted input with duplicates", func(t *testing.T) {
		list, err := New([]string{"zebra", "apel", "zebra", "", "apel"})
		require.NoError(t, err)

		assert.True(t, list.Contains("zebra"))
		assert.True(t, list.Contains("apel"))
		assert.Equal(t, 2, list.Len())
	})

	t.Run("empty list", func(t *testing.T) {
		list, err := New(nil)
		require.NoError(t, err)
		assert.False(t, list.Contains("anything"))
	})
}

func TestStoplistFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stoplist.txt")
	content := "yang\ndi\n\n  dan  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	list, err := FromFile(path)
	require.NoError(t, err)

	assert.True(t, list.Contains("yang"))
	assert.True(t, list.Contains("dan"))
	assert.Equal(t, 3, list.Len())

	_, err = FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

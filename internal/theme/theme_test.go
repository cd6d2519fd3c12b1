package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	defer func() { Current = Default }()

	require.True(t, Set("nord"))
	assert.Equal(t, "nord", Current.Name)

	require.False(t, Set("no-such-theme"))
	assert.Equal(t, "nord", Current.Name, "unknown names leave the theme alone")
}

func TestListIsSortedAndComplete(t *testing.T) {
	names := List()
	assert.IsIncreasing(t, names)
	for _, name := range names {
		th, ok := Get(name)
		require.True(t, ok)
		assert.Equal(t, name, th.Name)
		assert.NotEmpty(t, th.ChromaStyle)
		assert.NotEmpty(t, th.CursorLine)
	}
}

func TestThemesKeepRolesDistinct(t *testing.T) {
	for _, name := range List() {
		th, _ := Get(name)
		assert.Equal(t, th.Primary, th.BorderFocus, name)
		assert.Equal(t, th.Surface, th.CursorLine, name)
		assert.NotEqual(t, th.PathCurrent, th.PathEntry, name)
		assert.NotEqual(t, th.Background, th.CursorLine, name)
		assert.NotEqual(t, th.Text, th.TextDim, name)
	}
}

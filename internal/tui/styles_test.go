package tui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasColorSupport(t *testing.T) {
	t.Run("NO_COLOR set", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, HasColorSupport())
	})

	t.Run("dumb terminal", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		assert.False(t, HasColorSupport())
	})

	t.Run("regular terminal", func(t *testing.T) {
		t.Setenv("TERM", "xterm-256color")
		t.Setenv("NO_COLOR", "")
		require.NoError(t, os.Unsetenv("NO_COLOR"))
		assert.True(t, HasColorSupport())
	})
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	assert.Equal(t, "✓ ", padRight("✓", 2))
}

func TestColumnWidths(t *testing.T) {
	got := columnWidths([]string{"a", "bbb"}, [][]string{{"cccc", "d"}, {"e", "f", "ignored"}})
	assert.Equal(t, []int{4, 3}, got)
}

func TestNewOutputStyles(t *testing.T) {
	s := NewOutputStyles()
	assert.True(t, s.Success.GetBold())
	assert.True(t, s.Error.GetBold())
	assert.False(t, s.Info.GetBold())
}

package color

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorize(t *testing.T) {
	t.Run("truecolor_sequence", func(t *testing.T) {
		got := TrueColor().Colorize("red text", 255, 0, 0)
		assert.Equal(t, "\x1b[38;2;255;0;0mred text\x1b[0m", got)
	})

	t.Run("plain_profile_returns_text", func(t *testing.T) {
		assert.Equal(t, "red text", Plain().Colorize("red text", 255, 0, 0))
	})

	t.Run("tabs_are_kept", func(t *testing.T) {
		assert.Equal(t, "a\tb", Plain().Colorize("a\tb", 1, 2, 3))
	})
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	t.Run("auto_without_terminal_is_plain", func(t *testing.T) {
		assert.Equal(t, "x", New(ModeAuto, &buf, false).Colorize("x", 0, 0, 0))
	})

	t.Run("always_colors_any_writer", func(t *testing.T) {
		assert.Contains(t, New(ModeAlways, &buf, true).Colorize("x", 0, 128, 255), "38;2;0;128;255")
	})

	t.Run("never_is_plain", func(t *testing.T) {
		assert.Equal(t, "x", New(ModeNever, &buf, false).Colorize("x", 9, 9, 9))
	})
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"auto", "always", "never"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}

	_, err := ParseMode("sometimes")
	assert.Error(t, err)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", Hex(255, 0, 0))
	assert.Equal(t, "#0a0b0c", Hex(10, 11, 12))
}

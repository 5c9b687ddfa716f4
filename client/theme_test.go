package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemesAllConfigured(t *testing.T) {
	themes := Themes()
	assert.Len(t, themes, 6)

	for _, theme := range themes {
		assert.True(t, theme.Valid(), "theme %s", theme)
		cfg := theme.Config()
		assert.NotEmpty(t, cfg.BackColor, "theme %s", theme)
		assert.NotEmpty(t, cfg.FrontColor, "theme %s", theme)
		// One border color per pair on a full board.
		assert.Len(t, cfg.BorderPalette, 8, "theme %s", theme)
	}
}

func TestUnknownThemeFallsBackToDefault(t *testing.T) {
	unknown := Theme("neon")
	assert.False(t, unknown.Valid())
	assert.Equal(t, ThemeDefault.Config(), unknown.Config())
}

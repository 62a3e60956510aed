package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeMode_Valid(t *testing.T) {
	for _, m := range []ThemeMode{ThemeLight, ThemeDark, ThemeSystem} {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, ThemeMode("sepia").Valid())
	assert.False(t, ThemeMode("").Valid())
}

func TestThemeMode_Toggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeLight, ThemeSystem.Toggle())
}

func TestThemeMode_Dark(t *testing.T) {
	assert.True(t, ThemeDark.Dark(false))
	assert.False(t, ThemeLight.Dark(true))
	assert.True(t, ThemeSystem.Dark(true))
	assert.False(t, ThemeSystem.Dark(false))
}

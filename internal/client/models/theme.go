package models

// ThemeMode is the persisted appearance preference.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// DefaultTheme applies when nothing is stored.
const DefaultTheme = ThemeSystem

func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Toggle flips light to dark; every other mode (including system) goes to light.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Dark resolves the mode to a concrete appearance, consulting systemDark
// only for ThemeSystem.
func (m ThemeMode) Dark(systemDark bool) bool {
	switch m {
	case ThemeDark:
		return true
	case ThemeSystem:
		return systemDark
	default:
		return false
	}
}

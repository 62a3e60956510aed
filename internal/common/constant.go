// Package common contains shared constants and sentinel errors used across
// weeksoflife components.
package common

// Storage keys. Each persisted record kind lives under its own key and has an
// independent lifecycle.
const (
	KeyUserData            = "user_data"
	KeyThemePreference     = "theme_preference"
	KeyOnboardingCompleted = "onboarding_completed"
	KeyGridPreferences     = "grid_preferences"
)

// BackupVersion is the format version written into every backup blob.
const BackupVersion = "1.0.0"

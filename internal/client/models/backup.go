package models

import "encoding/json"

// Backup is the export format:
//
//	{"version":"1.0.0","timestamp":"...","data":{"user":...,"theme":...,
//	 "onboardingCompleted":true,"gridPreferences":...}}
//
// User is kept raw because its dates are encoded by the store. GridPreferences
// is kept raw so keys this build does not know survive a restore.
type Backup struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Data      *BackupData `json:"data"`
}

// BackupData holds one field per record kind. On restore a nil field means
// "leave the stored value alone".
type BackupData struct {
	User                json.RawMessage `json:"user"`
	Theme               *ThemeMode      `json:"theme"`
	OnboardingCompleted *bool           `json:"onboardingCompleted"`
	GridPreferences     json.RawMessage `json:"gridPreferences"`
}

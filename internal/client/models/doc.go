// Package models defines the client-side records persisted by weeksoflife:
// the user profile, the theme preference, grid preferences and the backup
// snapshot that bundles them.
package models

// Package services contains the client application services.
//
// Store is the persistence layer: typed accessors for the four record kinds
// (user profile, theme, onboarding flag, grid preferences) over a
// kv.Repository, plus whole-state backup and restore. ProfileService builds
// the onboarding and profile-editing flows on top of Store and the life
// calculator.
//
// Reads never fail: a missing key, unreadable bytes or a backend read error
// all surface as "absent" (and are logged). Writes return errors wrapping
// common.ErrStorageWrite.
package services

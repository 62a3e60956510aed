// Package common defines shared constants and sentinel errors used across
// the calculator, storage and CLI layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// ErrValidation is returned when input (a birth date, a name, a theme
	// mode) is rejected. It is usually wrapped with a specific reason.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when an update targets a record that was never stored.
	ErrNotFound = errors.New("not found")

	// ErrStorageWrite is returned when the underlying key-value store fails to
	// persist or remove a value.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrInvalidFormat is returned for malformed backup blobs.
	ErrInvalidFormat = errors.New("invalid format")
)

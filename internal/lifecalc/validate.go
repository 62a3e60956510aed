package lifecalc

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/weeksoflife/internal/common"
)

// ValidationError carries the user-facing reason a birth date was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return common.ErrValidation }

// ValidateBirthDate returns nil for an acceptable birth date, otherwise a
// *ValidationError for the first violated rule, checked in order: in the
// future, year too early, year after the current year, age above the maximum.
func (c *Calculator) ValidateBirthDate(birthDate time.Time) error {
	now := c.now()
	b := birthDate.In(c.loc)

	minYear := now.Year() - c.maxAgeYears
	maxYear := now.Year()

	switch {
	case b.After(now):
		return &ValidationError{Reason: "Birth date cannot be in the future"}
	case b.Year() < minYear:
		return &ValidationError{Reason: fmt.Sprintf("Birth year cannot be before %d", minYear)}
	case b.Year() > maxYear:
		return &ValidationError{Reason: fmt.Sprintf("Birth year cannot be after %d", maxYear)}
	case ageAt(b, now) > c.maxAgeYears:
		return &ValidationError{Reason: fmt.Sprintf("Age cannot exceed %d years", c.maxAgeYears)}
	}
	return nil
}

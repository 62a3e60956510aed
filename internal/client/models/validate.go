package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/weeksoflife/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags on v and wraps any failure with common.ErrValidation.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}

// ValidateName applies the same rules as User.Name.
func ValidateName(name string) error {
	if err := validate.Var(name, "required,max=100"); err != nil {
		return fmt.Errorf("%w: name: %v", common.ErrValidation, err)
	}
	return nil
}

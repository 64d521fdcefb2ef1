// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "cabinet/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates bound request bodies by their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate returns ErrValidationFailed describing the first failing field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]

		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(first.Field() + " failed on " + first.Tag()))
	}

	return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
}

// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "github.com/Hritik000/valentine-gifts-hub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator validates bound request structs against their validate tags.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the standard
// validation error shape; the per-field detail is safe to return since it
// only describes the client's own input.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

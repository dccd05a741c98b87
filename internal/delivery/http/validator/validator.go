// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "linkup/internal/domain/errors"
)

// CustomValidator wraps the validator instance used by echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the echo request validator.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Validation failures are surfaced as
// the domain validation error so the error handler renders them uniformly.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "request validation")
	}

	return nil
}

// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"trivia/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance used for request structs.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the validator Echo will call for every Bind target that
// carries validate tags.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.Wrap(err, "request validation failed")
	}

	return nil
}

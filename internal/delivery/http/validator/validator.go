// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "pos/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates request DTOs using their `validate` struct tags.
type CustomValidator struct {
	validate *playground.Validate
}

// New returns a validator that reports field names by their json tag.
func New() *CustomValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. Failures are reported as ErrValidationFailed with per-field details.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}
}

package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateNotBlank rejects strings that are non-empty but contain only
// whitespace. The required tag alone lets "   " through, which would
// otherwise reach the parsers as a non-empty document.
func ValidateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// RegisterTextValidators registers the custom text validators used by the
// request handlers.
func RegisterTextValidators(v *validator.Validate) {
	v.RegisterValidation("notblank", ValidateNotBlank)
}

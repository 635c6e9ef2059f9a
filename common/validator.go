package common

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// required passes on whitespace-only strings, which the remote
	// service rejects, so blankness gets its own tag.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateStruct validates a payload against its struct tags and returns
// the first violation in field-declaration order, or nil. Reporting a
// single cause at a time keeps user-facing messages unambiguous.
func ValidateStruct(payload interface{}) validator.FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return nil
	}
	return validationErrors[0]
}

// RegisterValidation exposes custom tag registration for callers that
// validate domain types beyond the plain wire payloads.
func RegisterValidation(tag string, fn validator.Func) error {
	return validate.RegisterValidation(tag, fn)
}

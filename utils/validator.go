package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report fields by their wire name so messages match what the user sees.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationError names the first offending field of a rejected struct.
type ValidationError struct {
	Field   string
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// ValidateStruct checks s and reports the first offending field only, in
// struct declaration order. A blank required field blocks submission before
// any network call is made.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	first := err.(validator.ValidationErrors)[0]
	switch first.Tag() {
	case "required":
		return &ValidationError{
			Field:   first.Field(),
			message: fmt.Sprintf("the %q field is required", first.Field()),
		}
	default:
		return &ValidationError{
			Field:   first.Field(),
			message: fmt.Sprintf("the %q field is invalid", first.Field()),
		}
	}
}

package validator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under the JSON field name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("passwordchars", func(fl validator.FieldLevel) bool {
		var hasLetter, hasDigit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsLetter(r):
				hasLetter = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		return hasLetter && hasDigit
	})
}

// Validate returns field-level errors keyed by JSON field name, or nil when
// the value is valid.
func Validate(v interface{}) map[string][]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs := make(map[string][]string)
	for _, fe := range err.(validator.ValidationErrors) {
		errs[fe.Field()] = append(errs[fe.Field()], message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "passwordchars":
		return "Password must contain at least one letter and one number"
	case "eqfield":
		return "Passwords don't match"
	default:
		return "Invalid value"
	}
}

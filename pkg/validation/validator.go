package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Standalone validator instance so services can validate payloads without
// going through Gin's binding layer.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Error keys use JSON tag names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("cnic", isCNIC)
	_ = v.RegisterValidation("hasdigit", hasDigit)
	_ = v.RegisterValidation("hasletter", hasLetter)
	return v
}

func isCNIC(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 13 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hasDigit(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func hasLetter(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// Struct validates s and returns a field-keyed error map, or nil when valid.
// Every field is evaluated; within a field the first failing rule wins, so a
// too-short password reports the length message before the character rules.
func Struct(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"payload": "invalid payload"}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, dup := out[fe.Field()]; dup {
			continue
		}
		out[fe.Field()] = formatFieldError(fe)
	}
	return out
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "cnic":
		return "CNIC must be a 13-digit number"
	case "hasdigit":
		return "Password must contain at least one digit."
	case "hasletter":
		return "Password must contain at least one letter."
	case "eqfield":
		if fe.Field() == "confirm_password" {
			return "Passwords do not match"
		}
		return "Must be equal to " + param + "."
	case "min":
		if fe.Field() == "password" {
			return fmt.Sprintf("Password must be at least %s characters.", param)
		}
		return fmt.Sprintf("Must be at least %s characters long.", param)
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", param)
	case "oneof":
		return "Must be one of: " + strings.Join(strings.Fields(param), ", ") + "."
	case "datetime":
		return "Date has wrong format. Use YYYY-MM-DD."
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

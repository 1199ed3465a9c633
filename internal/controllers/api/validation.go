package api

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Validation errors report the json names clients actually sent
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01", fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("year", func(fl validator.FieldLevel) bool {
		return yearPattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
}

// fieldErrors renders the binding engine's validation errors into
// per-field messages for the response envelope.
func fieldErrors(errs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{
			Field:   e.Field(),
			Message: validationErrorToText(e),
		})
	}
	return out
}

func validationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be longer than %s", e.Field(), e.Param())
	case "email":
		return "Invalid email format"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	case "month":
		return fmt.Sprintf("%s must be in YYYY-MM format", e.Field())
	case "year":
		return fmt.Sprintf("%s must be in YYYY format", e.Field())
	case "dateonly":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", e.Field())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

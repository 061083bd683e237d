package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Patterns from the member schema: a simple user@domain.tld email and an
// optionally plus-prefixed 10-14 digit phone number.
var (
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phonePattern = regexp.MustCompile(`^\+?\d{10,14}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("member_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("member_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// FieldError is a single field-level validation failure returned to clients.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validateStruct runs the shared validation rules and returns one entry per
// failing field, or nil when the value is valid. Both registration and
// profile update go through this routine.
func validateStruct(value interface{}) []FieldError {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}
	return fieldErrors(err)
}

func fieldErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Message: "invalid body"}}
	}

	details := make([]FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := lowerCamel(fieldError.Field())
		details = append(details, FieldError{
			Field:   field,
			Message: fieldMessage(field, fieldError.Tag()),
		})
	}
	return details
}

func fieldMessage(field, tag string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "member_email":
		return "invalid email"
	case "member_phone":
		return "invalid phone number"
	default:
		return field + " is invalid"
	}
}

// lowerCamel maps Go struct field names from binding errors back to their
// JSON spelling.
func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func respondValidationError(c *gin.Context, details []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "validation failed",
		"errors": details,
	})
}

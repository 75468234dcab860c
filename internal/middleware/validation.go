package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so errors match the request body
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned by DecodeAndValidate when the body is
// well-formed JSON but does not satisfy the request schema
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Normalizer is implemented by requests that clean their fields (trim
// whitespace and so on) before validation
type Normalizer interface {
	Normalize()
}

// Messenger is implemented by requests that provide their own messages.
// Keys are "<field>.<tag>", with the tag "type" used for JSON type
// mismatches.
type Messenger interface {
	ValidationMessages() map[string]string
}

// ValidateRequest validates a struct against its validation tags
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// DecodeAndValidate decodes the JSON request body into v, normalizes it
// and validates it. An empty body decodes as an empty object. Schema
// violations, including a JSON type mismatch, are reported together as
// ValidationErrors; any other error means the body could not be read or
// parsed.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	var errs ValidationErrors

	// The decoder keeps filling the remaining fields after a type mismatch
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return err
		}
		errs = append(errs, ValidationError{
			Field:   typeErr.Field,
			Message: messageFor(v, typeErr.Field, "type", "Invalid value"),
		})
	}

	if n, ok := v.(Normalizer); ok {
		n.Normalize()
	}

	if err := ValidateRequest(v); err != nil {
		formatted := FormatValidationErrors(err, v)
		if len(formatted) == 0 {
			return err
		}
		for _, fe := range formatted {
			// a mismatched field is already reported once
			if !errs.has(fe.Field) {
				errs = append(errs, fe)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (e ValidationErrors) has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// FormatValidationErrors converts validator errors to a readable format.
// All failing fields are reported.
func FormatValidationErrors(err error, v interface{}) ValidationErrors {
	var errs ValidationErrors

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs = append(errs, ValidationError{
				Field:   e.Field(),
				Message: messageFor(v, e.Field(), e.Tag(), getErrorMessage(e)),
			})
		}
	}

	return errs
}

func messageFor(v interface{}, field, tag, fallback string) string {
	if m, ok := v.(Messenger); ok {
		if msg, ok := m.ValidationMessages()[field+"."+tag]; ok {
			return msg
		}
	}
	return fallback
}

func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short"
	case "max":
		return "Value cannot exceed " + e.Param() + " characters"
	case "url":
		return "Invalid URL"
	default:
		return "Invalid value"
	}
}

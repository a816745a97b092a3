package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// FieldError is one entry in the structured error list returned for
// validation failures.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Struct runs the validate tags of s and returns one FieldError per failed
// field, or nil when s is valid.
func Struct(s any) []FieldError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldName(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldName lowercases the first rune of the struct field so errors match
// the JSON wire names.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName(fe))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldName(fe))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldName(fe), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fieldName(fe), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldName(fe), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fieldName(fe), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fieldName(fe), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fieldName(fe))
	}
}

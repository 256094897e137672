package petapi

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Report json names ("nombre") instead of Go names ("Nombre")
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidatePet checks the required-field and length rules of a record.
// Returns one validation error per offending field (empty if valid).
func ValidatePet(input PetInput) []error {
	err := validatorInstance().Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{NewValidationError("", err.Error())}
	}

	out := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, NewValidationError(fe.Field(), describeFieldError(fe)))
	}
	return out
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

// InvalidFields returns the field names named by validation errors.
func InvalidFields(errs []error) map[string]bool {
	fields := make(map[string]bool, len(errs))
	for _, err := range errs {
		if fe, ok := asFetchError(err); ok && fe.Field != "" {
			fields[fe.Field] = true
		}
	}
	return fields
}

// ValidateID checks that id can name a server-assigned record.
func ValidateID(id int) error {
	if id <= 0 {
		return NewValidationError("id", fmt.Sprintf("id must be a positive integer, got %d", id))
	}
	return nil
}

// FormatValidationErrors formats validation errors into a user-friendly message.
func FormatValidationErrors(errs []error) string {
	if len(errs) == 0 {
		return "No validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Validation failed with %d error(s):\n", len(errs)))

	for i, err := range errs {
		msg := err.Error()
		if fe, ok := asFetchError(err); ok {
			msg = fe.Message
		}
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, msg))
	}

	return sb.String()
}

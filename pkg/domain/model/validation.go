package model

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form field names, as posted and as sent to the backend
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldDepartment = "department"
)

// looseEmailPattern accepts anything containing "x@y.z" with no whitespace
// inside each part. It is unanchored on purpose, so "a b@c.d" passes.
var looseEmailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// IsLooseEmail reports whether s passes the email format check
func IsLooseEmail(s string) bool {
	return looseEmailPattern.MatchString(s)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return IsLooseEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// FieldErrorKind classifies a field validation failure
type FieldErrorKind string

const (
	RequiredFieldError FieldErrorKind = "required"
	FormatError        FieldErrorKind = "format"
)

// FieldError is a validation failure scoped to one form field
type FieldError struct {
	Field   string
	Kind    FieldErrorKind
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors maps field names to their validation failure
type FieldErrors map[string]*FieldError

// Has reports whether field failed validation
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Message returns the message for field, or an empty string
func (e FieldErrors) Message(field string) string {
	if fe, ok := e[field]; ok {
		return fe.Message
	}
	return ""
}

// ValidateEmployee checks values and returns every failing field at once.
// A nil result means the values may be submitted.
func ValidateEmployee(values EmployeeValues, msgs *Messages) FieldErrors {
	err := validate.Struct(values)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{
			FieldName: {Field: FieldName, Kind: RequiredFieldError, Message: msgs.RequiredField},
		}
	}

	result := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if result.Has(field) {
			continue
		}
		result[field] = toFieldError(field, fe.Tag(), msgs)
	}
	return result
}

func toFieldError(field, tag string, msgs *Messages) *FieldError {
	switch {
	case tag == "looseemail":
		return &FieldError{Field: field, Kind: FormatError, Message: msgs.InvalidEmail}
	case field == FieldDepartment:
		return &FieldError{Field: field, Kind: RequiredFieldError, Message: msgs.DepartmentMissing}
	default:
		return &FieldError{Field: field, Kind: RequiredFieldError, Message: msgs.RequiredField}
	}
}

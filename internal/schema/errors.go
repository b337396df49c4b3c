package schema

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindMissingField Kind = "MissingField"
	KindInvalidEnum  Kind = "InvalidEnum"
	KindInvalidType  Kind = "InvalidType"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrEmptyOutput   = errors.New("model returned no output")
	ErrInvalidOutput = errors.New("model output does not match schema")
)

// ValidationError describes why a generation request was rejected.
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func missingField(field string) *ValidationError {
	return &ValidationError{
		Kind:    KindMissingField,
		Field:   field,
		Message: field + " is required",
	}
}

// InvalidEnum reports a value outside of a closed set.
func InvalidEnum(field string, value string, allowed string) *ValidationError {
	return &ValidationError{
		Kind:    KindInvalidEnum,
		Field:   field,
		Message: fmt.Sprintf("%s must be one of %s (got %q)", field, allowed, value),
	}
}

func invalidType(field string, want string) *ValidationError {
	return &ValidationError{
		Kind:    KindInvalidType,
		Field:   field,
		Message: field + " must be a " + want,
	}
}

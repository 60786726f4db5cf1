package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")

	// ErrMalformedTable is returned when the columns of a spreadsheet cannot
	// be mapped to roles without guessing.
	ErrMalformedTable = errors.New("malformed table")
	// ErrModelLoad is returned when a persisted classifier model is missing or corrupt.
	ErrModelLoad = errors.New("model load failed")
	// ErrModelVersion is returned when a model artifact has an unknown format or version.
	ErrModelVersion = errors.New("incompatible model artifact")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// MalformedTableError reports which bucket and columns made a table unclassifiable.
type MalformedTableError struct {
	Bucket  string
	Columns []int
	Reason  string
}

func (e *MalformedTableError) Error() string {
	if len(e.Columns) == 0 {
		return fmt.Sprintf("malformed table: %s bucket: %s", e.Bucket, e.Reason)
	}
	cols := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		cols[i] = fmt.Sprint(c)
	}
	return fmt.Sprintf("malformed table: %s bucket columns [%s]: %s",
		e.Bucket, strings.Join(cols, ", "), e.Reason)
}

func (e *MalformedTableError) Unwrap() error { return ErrMalformedTable }

// ModelLoadError wraps a failure to load the classifier model of a bucket.
type ModelLoadError struct {
	Bucket string
	Path   string
	Err    error
}

func (e *ModelLoadError) Error() string {
	if e.Bucket == "" {
		return fmt.Sprintf("load model %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load %s model %s: %v", e.Bucket, e.Path, e.Err)
}

func (e *ModelLoadError) Unwrap() []error { return []error{ErrModelLoad, e.Err} }

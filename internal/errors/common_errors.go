package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeSchema     ErrorType = "SCHEMA"
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeConfig     ErrorType = "CONFIG"
)

// Sentinel errors matched with errors.Is against any AppError of the same kind
var (
	// ErrMissingColumn is returned when a dataset header lacks a required column
	ErrMissingColumn = stderrors.New("missing required column")
	// ErrSpeciesNotFound is returned when a requested species was never loaded
	ErrSpeciesNotFound = stderrors.New("species not found")
)

// AppError represents an application-specific error
type AppError struct {
	Type     ErrorType
	Message  string
	Cause    error
	Context  map[string]interface{}
	sentinel error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel the error was built from
func (e *AppError) Is(target error) bool {
	return e.sentinel != nil && e.sentinel == target
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err wraps an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper functions for common error types

// NewMissingColumnError creates a schema error listing the absent header names
func NewMissingColumnError(columns []string) *AppError {
	err := NewAppError(ErrTypeSchema,
		fmt.Sprintf("%s: %s", ErrMissingColumn.Error(), strings.Join(columns, ", ")), nil)
	err.sentinel = ErrMissingColumn
	return err.WithContext("columns", columns)
}

// NewSpeciesNotFoundError creates a not found error for an unknown species key
func NewSpeciesNotFoundError(species string) *AppError {
	err := NewAppError(ErrTypeNotFound, fmt.Sprintf("%s: %q", ErrSpeciesNotFound.Error(), species), nil)
	err.sentinel = ErrSpeciesNotFound
	return err.WithContext("species", species)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewAppValidationError creates a validation error for AppError type
func NewAppValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("%s not found", resource), nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

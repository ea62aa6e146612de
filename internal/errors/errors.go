package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an application error. The taxonomy is fixed: every
// failure the dataset operations can raise maps onto exactly one type.
type ErrorType string

const (
	ErrTypeNotFound       ErrorType = "NOT_FOUND"
	ErrTypeEmptySource    ErrorType = "EMPTY_SOURCE"
	ErrTypeUnknownColumn  ErrorType = "UNKNOWN_COLUMN"
	ErrTypeNotNumeric     ErrorType = "NOT_NUMERIC"
	ErrTypeUnsupportedOp  ErrorType = "UNSUPPORTED_OPERATION"
	ErrTypeMalformedInput ErrorType = "MALFORMED_INPUT"
	ErrTypeStorage        ErrorType = "STORAGE"
	ErrTypeValidation     ErrorType = "VALIDATION"
	ErrTypeConfig         ErrorType = "CONFIG"
)

// AppError is an application-specific error carrying a type, a descriptive
// message, an optional wrapped cause, and free-form context.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
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

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper constructors for the taxonomy

// NewNotFoundError creates an error for a missing file or resource.
func NewNotFoundError(path string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("file not found: %s", path), nil).
		WithContext("path", path)
}

// NewEmptySourceError creates an error for a source file with no parsable rows.
func NewEmptySourceError(path string) *AppError {
	return NewAppError(ErrTypeEmptySource, fmt.Sprintf("no data rows in file: %s", path), nil).
		WithContext("path", path)
}

// NewUnknownColumnError creates an error for a column absent from a dataset.
func NewUnknownColumnError(column string) *AppError {
	return NewAppError(ErrTypeUnknownColumn, fmt.Sprintf("column %q not found in dataset", column), nil).
		WithContext("column", column)
}

// NewNotNumericError creates an error for a numeric operation on a
// non-numeric column.
func NewNotNumericError(column string) *AppError {
	return NewAppError(ErrTypeNotNumeric, fmt.Sprintf("column %q is not numeric", column), nil).
		WithContext("column", column)
}

// NewUnsupportedOperationError creates an error for an invalid aggregation verb.
func NewUnsupportedOperationError(operation string, valid []string) *AppError {
	return NewAppError(ErrTypeUnsupportedOp,
		fmt.Sprintf("operation %q not supported, use one of %v", operation, valid), nil).
		WithContext("operation", operation)
}

// NewMalformedInputError creates an error for unparsable file content.
func NewMalformedInputError(message string, cause error) *AppError {
	return NewAppError(ErrTypeMalformedInput, message, cause)
}

// NewStorageError creates a file I/O error.
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewValidationError creates an input validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ErrTypeValidation, message, cause)
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrTypeData marks structurally invalid or degenerate input, such as a
	// training population with a single label class. Always fatal.
	ErrTypeData ErrorType = "DATA"
	// ErrTypeUnseenCategory marks a scoring-time category or version string
	// that is absent from the frozen encoding. Fatal on the strict path.
	ErrTypeUnseenCategory ErrorType = "UNSEEN_CATEGORY"
	ErrTypeParsing        ErrorType = "PARSING"
	ErrTypeStorage        ErrorType = "STORAGE"
	ErrTypeValidation     ErrorType = "VALIDATION"
	ErrTypeConfig         ErrorType = "CONFIG"
)

// AppError represents an application-specific error
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

// Helper constructors for common error types

// NewDataError creates an error for degenerate or invalid input data
func NewDataError(message string, cause error) *AppError {
	return NewAppError(ErrTypeData, message, cause)
}

// NewUnseenCategoryError creates an error for a categorical value missing
// from the frozen encoding
func NewUnseenCategoryError(field, value string) *AppError {
	e := NewAppError(ErrTypeUnseenCategory,
		fmt.Sprintf("value %q of field %q was not seen during training", value, field), nil)
	e.Context["field"] = field
	e.Context["value"] = value
	return e
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewValidationError creates a validation-related error
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ErrTypeValidation, message, cause)
}

// NewConfigError creates a configuration-related error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// IsType checks whether err is an AppError of the given type anywhere in
// its chain
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Type == errType {
			return true
		}
		return IsType(appErr.Cause, errType)
	}
	return false
}

// IsData reports whether err is a DATA error
func IsData(err error) bool {
	return IsType(err, ErrTypeData)
}

// IsUnseenCategory reports whether err is an UNSEEN_CATEGORY error
func IsUnseenCategory(err error) bool {
	return IsType(err, ErrTypeUnseenCategory)
}

package errors

import (
	"fmt"
)

// Error codes for the two user-facing failure kinds plus internals
const (
	CodeInputRejected   = "INPUT_REJECTED"
	CodeExecutionFailed = "EXECUTION_FAILED"
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// InputRejected marks a failure at the upload boundary: wrong file type or
// unreadable content
func InputRejected(message string) *AppError {
	return New(CodeInputRejected, message)
}

// ExecutionFailed marks an unexpected failure during result generation or
// rendering
func ExecutionFailed(message string, cause error) *AppError {
	return &AppError{Code: CodeExecutionFailed, Message: message, Cause: cause}
}

// ConfigInvalid marks a configuration problem detected at startup
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Dependency errors
	ErrDepMissing ErrorCode = "DEP_MISSING"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// State file errors
	ErrStateRead  ErrorCode = "STATE_READ"
	ErrStateWrite ErrorCode = "STATE_WRITE"

	// Asset errors
	ErrDownloadFailed ErrorCode = "DOWNLOAD_FAILED"
	ErrExtractFailed  ErrorCode = "EXTRACT_FAILED"
	ErrAssetNotFound  ErrorCode = "ASSET_NOT_FOUND"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrBackupFailed ErrorCode = "BACKUP_FAILED"
)

// SnowlandError represents a structured error with code and details
type SnowlandError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SnowlandError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SnowlandError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SnowlandError) Is(target error) bool {
	var targetErr *SnowlandError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SnowlandError with the given code and message
func New(code ErrorCode, message string) *SnowlandError {
	return &SnowlandError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SnowlandError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SnowlandError {
	return &SnowlandError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SnowlandError
func Wrap(err error, code ErrorCode, message string) *SnowlandError {
	if err == nil {
		return nil
	}
	return &SnowlandError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SnowlandError {
	if err == nil {
		return nil
	}
	return &SnowlandError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SnowlandError) WithDetail(key string, value interface{}) *SnowlandError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var serr *SnowlandError
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SnowlandError
func GetErrorCode(err error) ErrorCode {
	var serr *SnowlandError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ErrUnknown
}

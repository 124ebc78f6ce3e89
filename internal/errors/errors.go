package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
)

// Error types for termscan
type ErrorType string

const (
	// Invocation errors
	ErrorTypeUsage ErrorType = "usage"

	// Input file errors
	ErrorTypeFileNotFound ErrorType = "file_not_found"
	ErrorTypePermission   ErrorType = "permission"

	// Search errors
	ErrorTypePattern ErrorType = "pattern"

	// Results log errors
	ErrorTypeLogWrite ErrorType = "log_write"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// ErrNoWords is returned when a percentage is requested over zero words and
// the report policy asks for an error instead of 0%.
var ErrNoWords = errors.New("document has no words")

// UsageError represents an invocation with missing or malformed arguments
type UsageError struct {
	Type      ErrorType
	Usage     string
	Reason    string
	Timestamp time.Time
}

// NewUsageError creates a new usage error
func NewUsageError(reason, usage string) *UsageError {
	return &UsageError{
		Type:      ErrorTypeUsage,
		Usage:     usage,
		Reason:    reason,
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *UsageError) Error() string {
	if e.Usage == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s (usage: %s)", e.Reason, e.Usage)
}

// FileError represents a failure to locate or read the input file
type FileError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewFileError creates a new file error
func NewFileError(op, path string, err error) *FileError {
	errorType := ErrorTypeFileNotFound
	if isPermissionError(err) {
		errorType = ErrorTypePermission
	}

	return &FileError{
		Type:       errorType,
		Path:       path,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// isPermissionError checks if the error is a permission error
func isPermissionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, fs.ErrPermission) {
		return true
	}
	errStr := err.Error()
	return errStr == "permission denied" || errStr == "access denied"
}

// Error implements the error interface
func (e *FileError) Error() string {
	return fmt.Sprintf("file %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *FileError) Unwrap() error {
	return e.Underlying
}

// PatternError represents a search pattern that could not be compiled
type PatternError struct {
	Type       ErrorType
	Pattern    string
	Engine     string
	Underlying error
	Timestamp  time.Time
}

// NewPatternError creates a new pattern error
func NewPatternError(pattern, engine string, err error) *PatternError {
	return &PatternError{
		Type:       ErrorTypePattern,
		Pattern:    pattern,
		Engine:     engine,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *PatternError) Error() string {
	if e.Engine == "" {
		return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Underlying)
	}
	return fmt.Sprintf("invalid %s pattern %q: %v", e.Engine, e.Pattern, e.Underlying)
}

// Unwrap returns the underlying error
func (e *PatternError) Unwrap() error {
	return e.Underlying
}

// LogWriteError represents a failure to open or append to the results log
type LogWriteError struct {
	Type       ErrorType
	Path       string
	Underlying error
	Timestamp  time.Time
}

// NewLogWriteError creates a new results log error
func NewLogWriteError(path string, err error) *LogWriteError {
	return &LogWriteError{
		Type:       ErrorTypeLogWrite,
		Path:       path,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *LogWriteError) Error() string {
	return fmt.Sprintf("cannot write results log %s: %v", e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *LogWriteError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error
func NewMultiError(errs []error) *MultiError {
	// Filter out nil errors
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// ErrorOrNil returns nil when no errors were collected
func (e *MultiError) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a precondition violation on caller-supplied input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// RenderError represents a failure while encoding or rasterizing a symbol.
// It carries the underlying error so callers can log the cause.
type RenderError struct {
	Stage string
	Err   error
}

// Error implements the error interface
func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed during %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *RenderError) Unwrap() error {
	return e.Err
}

// PrintBlockedError represents a print surface that could not be opened.
// The print action did not proceed; nothing else is affected.
type PrintBlockedError struct {
	Reason string
}

// Error implements the error interface
func (e *PrintBlockedError) Error() string {
	return fmt.Sprintf("print surface blocked: %s", e.Reason)
}

// ExportError represents a failure creating or cleaning up a file export
type ExportError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s failed for %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *ExportError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRender checks if an error is a RenderError
func IsRender(err error) bool {
	var renderErr *RenderError
	return errors.As(err, &renderErr)
}

// IsPrintBlocked checks if an error is a PrintBlockedError
func IsPrintBlocked(err error) bool {
	var blockedErr *PrintBlockedError
	return errors.As(err, &blockedErr)
}

// IsExport checks if an error is an ExportError
func IsExport(err error) bool {
	var exportErr *ExportError
	return errors.As(err, &exportErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ABOUTME: Custom error types for the core business logic
// ABOUTME: Distinguishes document, download and validation failures for status reporting

package errors

import (
	"errors"
	"fmt"
)

// DocumentError represents a failure reading or writing a source document
type DocumentError struct {
	Path string
	Op   string
	Err  error
}

// Error implements the error interface
func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s failed for %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// DownloadError represents a failed asset download
type DownloadError struct {
	URL        string
	Dest       string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download failed for %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("download failed for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *DownloadError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsDocument checks if an error is a DocumentError
func IsDocument(err error) bool {
	var docErr *DocumentError
	return errors.As(err, &docErr)
}

// IsDownload checks if an error is a DownloadError
func IsDownload(err error) bool {
	var downloadErr *DownloadError
	return errors.As(err, &downloadErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

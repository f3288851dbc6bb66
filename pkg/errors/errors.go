// Package errors provides custom error types for the surveysweep pipeline.
// These errors enable programmatic error checking and keep the failure
// taxonomy explicit: configuration problems, unreadable data sources,
// reference-table inconsistencies, and per-recipient delivery failures.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the surveysweep pipeline
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadConfig indicates that the pipeline configuration cannot be resolved
	ErrBadConfig = errors.New("bad configuration")

	// ErrDataSource indicates that a required input table or sheet is missing or unreadable
	ErrDataSource = errors.New("data source unavailable")

	// ErrLookup indicates that a reference-table lookup failed unexpectedly
	ErrLookup = errors.New("reference lookup failed")

	// ErrDelivery indicates that a notification could not be delivered
	ErrDelivery = errors.New("delivery failed")
)

// ConfigError represents a configuration error, including the case where
// the reporting period cannot be resolved from the run date.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrBadConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// DataSourceError represents a missing or unreadable input workbook or sheet.
// These are fatal: nothing downstream is meaningful without complete inputs.
type DataSourceError struct {
	Path  string
	Sheet string
	Err   error
}

// Error implements the error interface
func (e *DataSourceError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("data source %s: sheet %q unreadable: %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("data source %s unreadable: %v", e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DataSourceError) Is(target error) bool {
	return target == ErrDataSource
}

// NewDataSourceError creates a new DataSourceError
func NewDataSourceError(path, sheet string, err error) *DataSourceError {
	return &DataSourceError{Path: path, Sheet: sheet, Err: err}
}

// LookupError represents a recipient or unit that was expected in a
// reference table but is absent. It signals inconsistent reference data
// rather than bad pipeline input.
type LookupError struct {
	Table string
	Key   string
}

// Error implements the error interface
func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup failed for %q", e.Table, e.Key)
}

// Is implements errors.Is support
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup || target == ErrNotFound
}

// NewLookupError creates a new LookupError
func NewLookupError(table, key string) *LookupError {
	return &LookupError{Table: table, Key: key}
}

// DeliveryError represents a transport or authentication failure for a
// single outbound message. It is recoverable: the caller records it and
// continues with the remaining recipients.
type DeliveryError struct {
	Recipient string
	Subject   string
	Err       error
}

// Error implements the error interface
func (e *DeliveryError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("delivery to %s failed (%s): %v", e.Recipient, e.Subject, e.Err)
	}
	return fmt.Sprintf("delivery to %s failed: %v", e.Recipient, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DeliveryError) Is(target error) bool {
	return target == ErrDelivery
}

// NewDeliveryError creates a new DeliveryError
func NewDeliveryError(recipient, subject string, err error) *DeliveryError {
	return &DeliveryError{Recipient: recipient, Subject: subject, Err: err}
}

// ValidationError represents a validation failure on an input field
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IOError represents an error during output I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Helper functions for error checking

// IsBadConfig checks if an error is a configuration error
func IsBadConfig(err error) bool {
	return errors.Is(err, ErrBadConfig)
}

// IsDataSource checks if an error is a data source error
func IsDataSource(err error) bool {
	return errors.Is(err, ErrDataSource)
}

// IsLookup checks if an error is a reference lookup error
func IsLookup(err error) bool {
	return errors.Is(err, ErrLookup)
}

// IsDelivery checks if an error is a delivery error
func IsDelivery(err error) bool {
	return errors.Is(err, ErrDelivery)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapDataSource wraps an error as a DataSourceError
func WrapDataSource(path, sheet string, err error) error {
	if err == nil {
		return nil
	}
	return NewDataSourceError(path, sheet, err)
}

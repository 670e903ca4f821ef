package catalog

import "fmt"

// RecordError represents a malformed policy record encountered while
// loading the catalog.
type RecordError struct {
	// PolicyNumber identifies the offending record, when known
	PolicyNumber string

	// Field is the field that failed validation
	Field string

	// Message describes the problem
	Message string
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.PolicyNumber != "" {
		return fmt.Sprintf("invalid policy record %q, field %q: %s", e.PolicyNumber, e.Field, e.Message)
	}
	return fmt.Sprintf("invalid policy record, field %q: %s", e.Field, e.Message)
}

// LoadError represents a failure to load the catalog from its source.
type LoadError struct {
	// Path is the file or directory that failed to load
	Path string

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load policy catalog from %q: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

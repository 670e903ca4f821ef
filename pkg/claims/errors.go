package claims

import "fmt"

// ValidationError represents an input validation failure at a component
// boundary. It is surfaced to the decision engine as a structured error and
// never corrupts the claim's existing state.
type ValidationError struct {
	// Field is the name of the invalid field
	Field string

	// Message describes what is invalid about the field
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field %q: %s", e.Field, e.Message)
}

package schema

import "fmt"

// ValidationError represents a value that does not conform to a schema.
type ValidationError struct {
	Message string // Human-readable failure detail
	Err     error  // Underlying validator error, if any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

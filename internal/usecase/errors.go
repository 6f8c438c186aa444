package usecase

import "fmt"

// ValidationError means a caller-supplied argument was missing or not a
// member of the allowed set.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// SchemaError means an expected sheet column or data region is absent.
// It usually signals that setup was never run, or someone edited the
// header row by hand.
type SchemaError struct {
	Sheet   string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet %q: %s", e.Sheet, e.Message)
}

func IsSchemaError(err error) bool {
	_, ok := err.(*SchemaError)
	return ok
}

// NotFoundError means the referenced lead ID does not exist in the
// Leads sheet.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lead %q not found", e.ID)
}

func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

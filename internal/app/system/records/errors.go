package records

import (
	"errors"
	"fmt"
)

// ErrCustomerNotFound is returned when a customer id does not resolve.
var ErrCustomerNotFound = errors.New("customer not found")

// ValidationError reports a required field that was missing or malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(field, label string) *ValidationError {
	return &ValidationError{Field: field, Message: label + " is required."}
}

package domain

import (
	"fmt"
	"strings"
)

// ValidationError marks a request rejected for bad input. Handlers map it
// to a client-side error response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a request for a product type with no catalog rows.
// Available carries the known product types so callers can hint the user.
type NotFoundError struct {
	ProductType string
	Available   []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %q not found, available types: %s",
		e.ProductType, strings.Join(e.Available, ", "))
}

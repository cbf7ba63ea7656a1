package services

import "errors"

var (
	// ErrNotFound covers any referenced entity that is absent: product,
	// cart, cart item or order. Not an alarm condition.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart is returned when checkout is attempted with no active
	// cart or zero items; kept distinct from validation failures so the
	// client can show a dedicated empty-cart state.
	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError reports malformed or out-of-range input. It is never
// retried and always maps to a 400 with the field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

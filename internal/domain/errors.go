package domain

import (
	"errors"
	"fmt"
)

// Precondition and lookup failures. All of them leave booking state
// untouched; the caller corrects its input and retries.
var (
	ErrNoFlightSelected      = errors.New("no flight selected")
	ErrNoSeatsAvailable      = errors.New("no seats available")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrCurrencyMismatch      = errors.New("outbound and return flights are priced in different currencies")
	ErrPaymentAmountMismatch = errors.New("payment amount does not match booking total")
	ErrPaymentTimedOut       = errors.New("payment timed out")
	ErrPaymentFailed         = errors.New("payment was declined")
	ErrBookingNotPending     = errors.New("booking is not pending")
)

// ValidationError names the first offending passenger or contact field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

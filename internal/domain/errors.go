package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVenueNotFound    = errors.New("venue not found")
	ErrBorrowerNotFound = errors.New("borrower not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrRefundNotFound   = errors.New("refund not found")
)

var (
	// ErrSlotConflict is returned when an approval would create a second
	// binding booking with an overlapping window on the same venue.
	ErrSlotConflict = errors.New("slot conflicts with a binding booking")

	// ErrInvalidTransition matches any *InvalidTransitionError via errors.Is.
	ErrInvalidTransition = errors.New("invalid status transition")
)

var ErrValidation = errors.New("validation error")

func newValidationErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// InvalidTransitionError reports a guarded transition attempted from a state
// that does not permit it. Callers (webhooks, the sweep) rely on the
// from/to pair to decide whether to retry or ignore.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot transition from %s to %s", e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func newBookingTransitionErr(from, to BookingStatus) error {
	return &InvalidTransitionError{Entity: "booking", From: string(from), To: string(to)}
}

func newPaymentTransitionErr(from, to PaymentStatus) error {
	return &InvalidTransitionError{Entity: "payment", From: string(from), To: string(to)}
}

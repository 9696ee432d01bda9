package domain

import "time"

type BookingStatus string

const (
	BookingStatusProcessing BookingStatus = "processing"
	BookingStatusApproved   BookingStatus = "approved"
	BookingStatusRejected   BookingStatus = "rejected"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusExpired    BookingStatus = "expired"
)

// BindingStatuses are the statuses that make a booking count toward
// availability checks. PROCESSING bookings are pending, not binding.
var BindingStatuses = []BookingStatus{BookingStatusApproved, BookingStatusCompleted}

type Booking struct {
	ID              string        `json:"id"`
	VenueID         string        `json:"venue_id"`
	BorrowerID      string        `json:"borrower_id"`
	Activity        string        `json:"activity"`
	DocumentRef     string        `json:"document_ref,omitempty"`
	Window          TimeWindow    `json:"window"`
	Status          BookingStatus `json:"status"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (b *Booking) IsBinding() bool {
	return b.Status == BookingStatusApproved || b.Status == BookingStatusCompleted
}

// Approve moves PROCESSING -> APPROVED. The caller must have verified slot
// availability under the same transactional boundary.
func (b *Booking) Approve() error {
	if b.Status != BookingStatusProcessing {
		return newBookingTransitionErr(b.Status, BookingStatusApproved)
	}
	b.Status = BookingStatusApproved
	return nil
}

// Reject moves PROCESSING -> REJECTED. The reason is mandatory.
func (b *Booking) Reject(reason string) error {
	if reason == "" {
		return newValidationErr("rejection reason is required")
	}
	if b.Status != BookingStatusProcessing {
		return newBookingTransitionErr(b.Status, BookingStatusRejected)
	}
	b.Status = BookingStatusRejected
	b.RejectionReason = reason
	return nil
}

// CancelRefunded moves APPROVED -> REJECTED after a paid booking is
// cancelled. A refunded booking reuses the rejection terminal state and can
// never be re-approved.
func (b *Booking) CancelRefunded(reason string) error {
	if reason == "" {
		return newValidationErr("cancellation reason is required")
	}
	if b.Status != BookingStatusApproved {
		return newBookingTransitionErr(b.Status, BookingStatusRejected)
	}
	b.Status = BookingStatusRejected
	b.RejectionReason = reason
	return nil
}

// Complete moves APPROVED -> COMPLETED once the payment is settled-in and
// the window has ended. Time-driven, applied by the sweep.
func (b *Booking) Complete(p *Payment, now time.Time) error {
	if b.Status != BookingStatusApproved || p == nil || !p.IsPaid() {
		return newBookingTransitionErr(b.Status, BookingStatusCompleted)
	}
	if now.Before(b.Window.EndsAt()) {
		return newBookingTransitionErr(b.Status, BookingStatusCompleted)
	}
	b.Status = BookingStatusCompleted
	return nil
}

// ExpireUnpaid moves APPROVED -> EXPIRED when the payment deadline passed
// without payment. The payment expires with it and the slot is freed.
func (b *Booking) ExpireUnpaid(p *Payment, now time.Time) error {
	if b.Status != BookingStatusApproved || p == nil || !p.IsPayable() {
		return newBookingTransitionErr(b.Status, BookingStatusExpired)
	}
	if !p.DeadlinePassed(now) {
		return newBookingTransitionErr(b.Status, BookingStatusExpired)
	}
	if err := p.Expire(now); err != nil {
		return err
	}
	b.Status = BookingStatusExpired
	return nil
}

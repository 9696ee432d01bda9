package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooking(status BookingStatus) *Booking {
	return &Booking{
		ID:      "b1",
		VenueID: "v1",
		Window:  window(date(2025, time.March, 10), date(2025, time.March, 10), 8*60, 10*60),
		Status:  status,
	}
}

func paidPayment() *Payment {
	paidAt := time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)
	return &Payment{
		ID:        "p1",
		BookingID: "b1",
		Amount:    100000,
		Status:    PaymentStatusPaid,
		PaidAt:    &paidAt,
		Deadline:  time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestBooking_Approve(t *testing.T) {
	b := testBooking(BookingStatusProcessing)
	require.NoError(t, b.Approve())
	assert.Equal(t, BookingStatusApproved, b.Status)

	for _, status := range []BookingStatus{BookingStatusApproved, BookingStatusRejected, BookingStatusCompleted, BookingStatusExpired} {
		b := testBooking(status)
		err := b.Approve()
		assert.ErrorIs(t, err, ErrInvalidTransition, "approve from %s", status)
		assert.Equal(t, status, b.Status)
	}
}

func TestBooking_Reject(t *testing.T) {
	b := testBooking(BookingStatusProcessing)
	require.NoError(t, b.Reject("double booked"))
	assert.Equal(t, BookingStatusRejected, b.Status)
	assert.Equal(t, "double booked", b.RejectionReason)

	b = testBooking(BookingStatusProcessing)
	assert.ErrorIs(t, b.Reject(""), ErrValidation)
	assert.Equal(t, BookingStatusProcessing, b.Status)

	b = testBooking(BookingStatusApproved)
	assert.ErrorIs(t, b.Reject("too late"), ErrInvalidTransition)
}

func TestBooking_CancelRefunded(t *testing.T) {
	b := testBooking(BookingStatusApproved)
	require.NoError(t, b.CancelRefunded("event cancelled"))
	assert.Equal(t, BookingStatusRejected, b.Status)
	assert.Equal(t, "event cancelled", b.RejectionReason)

	b = testBooking(BookingStatusProcessing)
	assert.ErrorIs(t, b.CancelRefunded("nope"), ErrInvalidTransition)
}

func TestBooking_Complete(t *testing.T) {
	afterEnd := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)

	b := testBooking(BookingStatusApproved)
	require.NoError(t, b.Complete(paidPayment(), afterEnd))
	assert.Equal(t, BookingStatusCompleted, b.Status)

	// Settled counts as paid-in.
	b = testBooking(BookingStatusApproved)
	p := paidPayment()
	p.Status = PaymentStatusSettled
	require.NoError(t, b.Complete(p, afterEnd))
}

func TestBooking_Complete_Guards(t *testing.T) {
	afterEnd := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)

	// Unpaid payment blocks completion regardless of time.
	b := testBooking(BookingStatusApproved)
	unpaid := paidPayment()
	unpaid.Status = PaymentStatusUnpaid
	assert.ErrorIs(t, b.Complete(unpaid, afterEnd), ErrInvalidTransition)
	assert.Equal(t, BookingStatusApproved, b.Status)

	// Window still running.
	b = testBooking(BookingStatusApproved)
	beforeEnd := time.Date(2025, time.March, 10, 9, 59, 0, 0, time.UTC)
	assert.ErrorIs(t, b.Complete(paidPayment(), beforeEnd), ErrInvalidTransition)

	// Wrong source state.
	b = testBooking(BookingStatusProcessing)
	assert.ErrorIs(t, b.Complete(paidPayment(), afterEnd), ErrInvalidTransition)

	b = testBooking(BookingStatusApproved)
	assert.ErrorIs(t, b.Complete(nil, afterEnd), ErrInvalidTransition)
}

func TestBooking_ExpireUnpaid(t *testing.T) {
	deadline := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)

	b := testBooking(BookingStatusApproved)
	p := &Payment{ID: "p1", Status: PaymentStatusUnpaid, Deadline: deadline}
	require.NoError(t, b.ExpireUnpaid(p, deadline.Add(time.Minute)))
	assert.Equal(t, BookingStatusExpired, b.Status)
	assert.Equal(t, PaymentStatusExpired, p.Status)
}

func TestBooking_ExpireUnpaid_Guards(t *testing.T) {
	deadline := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)

	// Deadline not reached yet.
	b := testBooking(BookingStatusApproved)
	p := &Payment{Status: PaymentStatusUnpaid, Deadline: deadline}
	assert.ErrorIs(t, b.ExpireUnpaid(p, deadline.Add(-time.Minute)), ErrInvalidTransition)
	assert.Equal(t, BookingStatusApproved, b.Status)
	assert.Equal(t, PaymentStatusUnpaid, p.Status)

	// Paid payments never expire.
	b = testBooking(BookingStatusApproved)
	assert.ErrorIs(t, b.ExpireUnpaid(paidPayment(), deadline.Add(time.Hour)), ErrInvalidTransition)

	// Wrong source state.
	b = testBooking(BookingStatusProcessing)
	p = &Payment{Status: PaymentStatusUnpaid, Deadline: deadline}
	assert.ErrorIs(t, b.ExpireUnpaid(p, deadline.Add(time.Minute)), ErrInvalidTransition)
}

func TestBooking_IsBinding(t *testing.T) {
	assert.True(t, testBooking(BookingStatusApproved).IsBinding())
	assert.True(t, testBooking(BookingStatusCompleted).IsBinding())
	assert.False(t, testBooking(BookingStatusProcessing).IsBinding())
	assert.False(t, testBooking(BookingStatusRejected).IsBinding())
	assert.False(t, testBooking(BookingStatusExpired).IsBinding())
}

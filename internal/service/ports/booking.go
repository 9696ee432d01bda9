package ports

import (
	"context"
	"time"

	"github.com/howlil/VenueBooker/internal/domain"
)

// BookingRepo owns every transactional boundary around booking state. All
// state-mutating methods run read -> guard -> write atomically; callers
// never update booking fields directly.
type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// ListBinding returns APPROVED/COMPLETED bookings for the venue,
	// skipping excludeID when non-empty.
	ListBinding(ctx context.Context, venueID, excludeID string) ([]*domain.Booking, error)
	ListForVenue(ctx context.Context, venueID string, from, to time.Time) ([]*domain.Booking, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]*domain.Booking, error)

	// Approve re-checks slot availability under a per-venue lock, flips the
	// booking to APPROVED and inserts the UNPAID payment in one transaction.
	Approve(ctx context.Context, bookingID string, p *domain.Payment) (*domain.Booking, error)
	Reject(ctx context.Context, bookingID, reason string) (*domain.Booking, error)

	Complete(ctx context.Context, bookingID string, now time.Time) (*domain.Booking, error)
	ExpirePayment(ctx context.Context, bookingID string, now time.Time) (*domain.Booking, error)

	// CancelWithRefund flips an APPROVED+PAID booking to REJECTED and
	// records the pending refund in one transaction.
	CancelWithRefund(ctx context.Context, bookingID, reason string, refund *domain.Refund, now time.Time) (*domain.Booking, error)

	DueCompletions(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	DueExpirations(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}

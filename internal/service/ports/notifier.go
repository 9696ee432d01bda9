package ports

import (
	"context"

	"github.com/howlil/VenueBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingApproved(ctx context.Context, borrower *domain.Borrower, venue *domain.Venue, booking *domain.Booking, payment *domain.Payment)
	NotifyBookingRejected(ctx context.Context, borrower *domain.Borrower, venue *domain.Venue, booking *domain.Booking)
	NotifyPaymentReceived(ctx context.Context, borrower *domain.Borrower, venue *domain.Venue, booking *domain.Booking)
	NotifyBookingCompleted(ctx context.Context, borrower *domain.Borrower, venue *domain.Venue, booking *domain.Booking)
	NotifyBookingExpired(ctx context.Context, borrower *domain.Borrower, venue *domain.Venue, booking *domain.Booking)
}

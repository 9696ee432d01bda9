package ports

import (
	"context"
	"time"

	"github.com/howlil/VenueBooker/internal/domain"
)

// PaymentRepo is the ledger side of the store: payment facts and refund
// settlement.
type PaymentRepo interface {
	GetByBooking(ctx context.Context, bookingID string) (*domain.Payment, error)

	// MarkPaid records the gateway confirmation, guarded so a payment can
	// only become PAID once and only while its booking is APPROVED.
	MarkPaid(ctx context.Context, bookingID, gatewayRef, method string, now time.Time) (*domain.Payment, error)

	GetRefund(ctx context.Context, id string) (*domain.Refund, error)

	// SettleRefund completes a pending refund and settles its payment.
	SettleRefund(ctx context.Context, refundID string) error
}

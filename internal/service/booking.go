package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/howlil/VenueBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingPolicy fixes the payment amount formula and deadline. The amount is
// rate x inclusive day count plus the flat service fee; the same numbers are
// used by the state machine and the sweep.
type BookingPolicy struct {
	ServiceFee int64
	PaymentTTL time.Duration
}

type BookingService struct {
	bookingRepo  ports.BookingRepo
	venueRepo    ports.VenueRepo
	borrowerRepo ports.BorrowerRepo
	paymentRepo  ports.PaymentRepo
	notifier     ports.BookingNotifier
	gateway      ports.RefundGateway
	publisher    ports.EventPublisher
	policy       BookingPolicy
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	venueRepo ports.VenueRepo,
	borrowerRepo ports.BorrowerRepo,
	paymentRepo ports.PaymentRepo,
	notifier ports.BookingNotifier,
	gateway ports.RefundGateway,
	publisher ports.EventPublisher,
	policy BookingPolicy,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		venueRepo:    venueRepo,
		borrowerRepo: borrowerRepo,
		paymentRepo:  paymentRepo,
		notifier:     notifier,
		gateway:      gateway,
		publisher:    publisher,
		policy:       policy,
		logger:       logger,
	}
}

// Reserve creates a PROCESSING booking. Overlapping PROCESSING requests for
// the same slot may coexist; exclusivity is enforced at approval time, where
// the admin arbitrates which request wins.
func (s *BookingService) Reserve(ctx context.Context, input domain.ReserveInput) (*domain.Booking, error) {
	if input.Activity == "" {
		return nil, fmt.Errorf("%w: activity is required", domain.ErrValidation)
	}
	if err := input.Window.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.venueRepo.GetByID(ctx, input.VenueID); err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}
	if _, err := s.borrowerRepo.GetByID(ctx, input.BorrowerID); err != nil {
		return nil, fmt.Errorf("check borrower: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		VenueID:     input.VenueID,
		BorrowerID:  input.BorrowerID,
		Activity:    input.Activity,
		DocumentRef: input.DocumentRef,
		Window:      input.Window,
		Status:      domain.BookingStatusProcessing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("venue_id", input.VenueID),
		logger.String("borrower_id", input.BorrowerID),
	)

	return booking, nil
}

// IsAvailable reports whether the window is free of binding bookings on the
// venue. excludeID lets a booking being re-evaluated skip itself. This is
// the display-facing check; Approve repeats it inside its transaction.
func (s *BookingService) IsAvailable(ctx context.Context, venueID string, window domain.TimeWindow, excludeID string) (bool, error) {
	if err := window.Validate(); err != nil {
		return false, err
	}

	binding, err := s.bookingRepo.ListBinding(ctx, venueID, excludeID)
	if err != nil {
		return false, fmt.Errorf("list binding bookings: %w", err)
	}

	for _, b := range binding {
		if b.Window.Overlaps(window) {
			return false, nil
		}
	}
	return true, nil
}

// Approve transitions a PROCESSING booking to APPROVED and opens its UNPAID
// payment. The conflict check against other binding bookings runs inside the
// repository transaction under a per-venue lock, so two concurrent approvals
// of overlapping requests yield exactly one winner.
func (s *BookingService) Approve(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	venue, err := s.venueRepo.GetByID(ctx, booking.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		BookingID:     booking.ID,
		Amount:        venue.Rate * int64(booking.Window.Days()),
		ServiceFee:    s.policy.ServiceFee,
		Status:        domain.PaymentStatusUnpaid,
		InvoiceNumber: invoiceNumber(now, booking.ID),
		Deadline:      now.Add(s.policy.PaymentTTL),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	approved, err := s.bookingRepo.Approve(ctx, bookingID, payment)
	if err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}

	s.logger.Info("booking approved",
		logger.String("booking_id", approved.ID),
		logger.String("venue_id", approved.VenueID),
		logger.Int("amount", int(payment.Total())),
	)

	bg := context.WithoutCancel(ctx)
	go s.notifyWithRefs(bg, approved, func(borrower *domain.Borrower, v *domain.Venue) {
		s.notifier.NotifyBookingApproved(bg, borrower, v, approved, payment)
	})
	s.publish(bg, "booking.approved", approved)

	return approved, nil
}

// Reject terminates a PROCESSING booking with a mandatory reason.
func (s *BookingService) Reject(ctx context.Context, bookingID, reason string) (*domain.Booking, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}

	rejected, err := s.bookingRepo.Reject(ctx, bookingID, reason)
	if err != nil {
		return nil, fmt.Errorf("reject booking: %w", err)
	}

	s.logger.Info("booking rejected",
		logger.String("booking_id", rejected.ID),
		logger.String("reason", reason),
	)

	bg := context.WithoutCancel(ctx)
	go s.notifyWithRefs(bg, rejected, func(borrower *domain.Borrower, v *domain.Venue) {
		s.notifier.NotifyBookingRejected(bg, borrower, v, rejected)
	})
	s.publish(bg, "booking.rejected", rejected)

	return rejected, nil
}

// MarkPaid applies a verified gateway confirmation. Duplicate deliveries
// after the payment is already PAID are treated as success so webhook
// retries stay idempotent.
func (s *BookingService) MarkPaid(ctx context.Context, conf domain.PaymentConfirmation) error {
	payment, err := s.paymentRepo.GetByBooking(ctx, conf.BookingID)
	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}

	if payment.IsPaid() {
		s.logger.Info("duplicate payment confirmation ignored",
			logger.String("booking_id", conf.BookingID),
			logger.String("gateway_ref", conf.GatewayRef),
		)
		return nil
	}

	if conf.Amount != 0 && conf.Amount != payment.Total() {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "gateway amount differs from invoice",
			logger.String("booking_id", conf.BookingID),
			logger.Int("invoiced", int(payment.Total())),
			logger.Int("confirmed", int(conf.Amount)),
		)
	}

	now := time.Now().UTC()
	paid, err := s.paymentRepo.MarkPaid(ctx, conf.BookingID, conf.GatewayRef, conf.Method, now)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			// Lost a race against a concurrent confirmation; re-read and
			// absorb the duplicate.
			if current, readErr := s.paymentRepo.GetByBooking(ctx, conf.BookingID); readErr == nil && current.IsPaid() {
				return nil
			}
		}
		return fmt.Errorf("mark paid: %w", err)
	}

	s.logger.Info("payment confirmed",
		logger.String("booking_id", conf.BookingID),
		logger.String("gateway_ref", conf.GatewayRef),
		logger.String("method", conf.Method),
	)

	booking, err := s.bookingRepo.GetByID(ctx, conf.BookingID)
	if err != nil {
		s.logger.Error("failed to load booking for payment notification",
			logger.String("booking_id", conf.BookingID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	bg := context.WithoutCancel(ctx)
	go s.notifyWithRefs(bg, booking, func(borrower *domain.Borrower, v *domain.Venue) {
		s.notifier.NotifyPaymentReceived(bg, borrower, v, booking)
	})
	s.publish(bg, "payment.paid", paid)

	return nil
}

// CancelWithRefund cancels a paid, not-yet-started booking. The refund is
// recorded pending, the booking lands on the rejection terminal state, and
// fund movement runs asynchronously through the gateway before the ledger
// is settled.
func (s *BookingService) CancelWithRefund(ctx context.Context, bookingID, reason string) (*domain.Refund, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: cancellation reason is required", domain.ErrValidation)
	}

	payment, err := s.paymentRepo.GetByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	now := time.Now().UTC()
	refund := &domain.Refund{
		ID:         uuid.New().String(),
		PaymentID:  payment.ID,
		Amount:     payment.Total(),
		Reason:     reason,
		Status:     domain.RefundStatusPending,
		RefundDate: now,
		CreatedAt:  now,
	}

	cancelled, err := s.bookingRepo.CancelWithRefund(ctx, bookingID, reason, refund, now)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled with refund",
		logger.String("booking_id", bookingID),
		logger.String("refund_id", refund.ID),
		logger.Int("amount", int(refund.Amount)),
	)

	bg := context.WithoutCancel(ctx)
	go s.notifyWithRefs(bg, cancelled, func(borrower *domain.Borrower, v *domain.Venue) {
		s.notifier.NotifyBookingRejected(bg, borrower, v, cancelled)
	})
	s.publish(bg, "payment.refunded", refund)

	go s.processRefund(bg, refund, payment)

	return refund, nil
}

// processRefund drives the fund movement through the gateway and reports
// settlement back into the ledger. A failure leaves the refund pending; the
// operator re-triggers settlement through SettleRefund.
func (s *BookingService) processRefund(ctx context.Context, refund *domain.Refund, payment *domain.Payment) {
	if s.gateway == nil {
		return
	}

	gatewayRefundID, err := s.gateway.CreateRefund(ctx, payment.GatewayRef, refund.Amount)
	if err != nil {
		s.logger.Error("gateway refund failed",
			logger.String("refund_id", refund.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	if err := s.SettleRefund(ctx, refund.ID); err != nil {
		s.logger.Error("refund settlement failed",
			logger.String("refund_id", refund.ID),
			logger.String("gateway_refund_id", gatewayRefundID),
			logger.String("error", err.Error()),
		)
	}
}

// SettleRefund marks a pending refund completed and settles its payment.
// Also exposed for the payment-integration layer to report settlement.
func (s *BookingService) SettleRefund(ctx context.Context, refundID string) error {
	if err := s.paymentRepo.SettleRefund(ctx, refundID); err != nil {
		return fmt.Errorf("settle refund: %w", err)
	}

	s.logger.Info("refund settled", logger.String("refund_id", refundID))
	return nil
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListForVenue(ctx context.Context, venueID string, from, to time.Time) ([]*domain.Booking, error) {
	return s.bookingRepo.ListForVenue(ctx, venueID, from, to)
}

func (s *BookingService) ListByBorrower(ctx context.Context, borrowerID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByBorrower(ctx, borrowerID)
}

func (s *BookingService) publish(ctx context.Context, key string, v any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJSON(ctx, key, v); err != nil {
		s.logger.Error("publish event",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

// notifyWithRefs resolves the borrower and venue a notification needs and
// invokes fn. Lookup failures are logged, never surfaced to the caller.
func (s *BookingService) notifyWithRefs(ctx context.Context, b *domain.Booking, fn func(*domain.Borrower, *domain.Venue)) {
	borrower, err := s.borrowerRepo.GetByID(ctx, b.BorrowerID)
	if err != nil {
		s.logger.Error("failed to get borrower for notification",
			logger.String("borrower_id", b.BorrowerID),
		)
		return
	}

	venue, err := s.venueRepo.GetByID(ctx, b.VenueID)
	if err != nil {
		s.logger.Error("failed to get venue for notification",
			logger.String("venue_id", b.VenueID),
		)
		return
	}

	fn(borrower, venue)
}

func invoiceNumber(now time.Time, bookingID string) string {
	short := bookingID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), short)
}

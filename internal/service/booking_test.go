package service

import (
	"context"
	"testing"
	"time"

	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/howlil/VenueBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	bookingRepo  *mocks.MockBookingRepo
	venueRepo    *mocks.MockVenueRepo
	borrowerRepo *mocks.MockBorrowerRepo
	paymentRepo  *mocks.MockPaymentRepo
	notifier     *mocks.MockBookingNotifier
	gateway      *mocks.MockRefundGateway
	publisher    *mocks.MockEventPublisher
	svc          *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookingRepo:  mocks.NewMockBookingRepo(t),
		venueRepo:    mocks.NewMockVenueRepo(t),
		borrowerRepo: mocks.NewMockBorrowerRepo(t),
		paymentRepo:  mocks.NewMockPaymentRepo(t),
		notifier:     mocks.NewMockBookingNotifier(t),
		gateway:      mocks.NewMockRefundGateway(t),
		publisher:    mocks.NewMockEventPublisher(t),
	}
	f.svc = NewBookingService(
		f.bookingRepo, f.venueRepo, f.borrowerRepo, f.paymentRepo,
		f.notifier, f.gateway, f.publisher,
		BookingPolicy{ServiceFee: 5000, PaymentTTL: 24 * time.Hour},
		newTestLogger(t),
	)
	return f
}

func testWindow() domain.TimeWindow {
	return domain.TimeWindow{
		StartDate: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		StartTime: 8 * 60,
		EndTime:   10 * 60,
	}
}

// --- Reserve ---

func TestBookingService_Reserve_Success(t *testing.T) {
	f := newBookingFixture(t)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.borrowerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.Borrower{ID: "u1"}, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VenueID:    "v1",
		BorrowerID: "u1",
		Activity:   "Team offsite",
		Window:     testWindow(),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusProcessing, booking.Status)
	assert.Equal(t, "v1", booking.VenueID)
	assert.Equal(t, "u1", booking.BorrowerID)
	assert.NotEmpty(t, booking.ID)
}

func TestBookingService_Reserve_MissingActivity(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VenueID:    "v1",
		BorrowerID: "u1",
		Window:     testWindow(),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Reserve_InvalidWindow(t *testing.T) {
	f := newBookingFixture(t)

	w := testWindow()
	w.StartTime, w.EndTime = w.EndTime, w.StartTime

	_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VenueID:    "v1",
		BorrowerID: "u1",
		Activity:   "Team offsite",
		Window:     w,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Reserve_VenueNotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVenueNotFound)

	_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VenueID:    "missing",
		BorrowerID: "u1",
		Activity:   "Team offsite",
		Window:     testWindow(),
	})

	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

// --- IsAvailable ---

func TestBookingService_IsAvailable_Conflict(t *testing.T) {
	f := newBookingFixture(t)

	binding := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusApproved, Window: testWindow()},
	}
	f.bookingRepo.EXPECT().ListBinding(mock.Anything, "v1", "").Return(binding, nil)

	w := testWindow()
	w.StartTime, w.EndTime = 9*60, 11*60 // cuts into 08:00-10:00

	available, err := f.svc.IsAvailable(context.Background(), "v1", w, "")

	require.NoError(t, err)
	assert.False(t, available)
}

func TestBookingService_IsAvailable_AdjacentSlotIsFree(t *testing.T) {
	f := newBookingFixture(t)

	binding := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusApproved, Window: testWindow()},
	}
	f.bookingRepo.EXPECT().ListBinding(mock.Anything, "v1", "").Return(binding, nil)

	w := testWindow()
	w.StartTime, w.EndTime = 10*60, 12*60 // starts exactly when b1 ends

	available, err := f.svc.IsAvailable(context.Background(), "v1", w, "")

	require.NoError(t, err)
	assert.True(t, available)
}

func TestBookingService_IsAvailable_ExcludesSelf(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().ListBinding(mock.Anything, "v1", "b1").Return(nil, nil)

	available, err := f.svc.IsAvailable(context.Background(), "v1", testWindow(), "b1")

	require.NoError(t, err)
	assert.True(t, available)
}

// --- Approve ---

func TestBookingService_Approve_Success(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{
		ID:         "b1",
		VenueID:    "v1",
		BorrowerID: "u1",
		Window:     testWindow(), // 3 days
		Status:     domain.BookingStatusProcessing,
	}
	venue := &domain.Venue{ID: "v1", Name: "Hall A", Rate: 100000}
	borrower := &domain.Borrower{ID: "u1", Name: "Alice"}
	approved := &domain.Booking{
		ID: "b1", VenueID: "v1", BorrowerID: "u1",
		Window: booking.Window, Status: domain.BookingStatusApproved,
	}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.borrowerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(borrower, nil)

	var captured *domain.Payment
	f.bookingRepo.EXPECT().Approve(mock.Anything, "b1", mock.Anything).
		Run(func(ctx context.Context, bookingID string, p *domain.Payment) {
			captured = p
		}).
		Return(approved, nil)

	f.notifier.EXPECT().NotifyBookingApproved(mock.Anything, borrower, venue, approved, mock.Anything).Return()
	f.publisher.EXPECT().PublishJSON(mock.Anything, "booking.approved", approved).Return(nil)

	got, err := f.svc.Approve(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, got.Status)

	require.NotNil(t, captured)
	assert.Equal(t, int64(300000), captured.Amount, "rate x 3 inclusive days")
	assert.Equal(t, int64(5000), captured.ServiceFee)
	assert.Equal(t, domain.PaymentStatusUnpaid, captured.Status)
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), captured.Deadline, time.Minute)
	assert.Contains(t, captured.InvoiceNumber, "INV-")

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Approve_SlotConflict(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{
		ID: "b1", VenueID: "v1", BorrowerID: "u1",
		Window: testWindow(), Status: domain.BookingStatusProcessing,
	}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1", Rate: 100000}, nil)
	f.bookingRepo.EXPECT().Approve(mock.Anything, "b1", mock.Anything).Return(nil, domain.ErrSlotConflict)

	_, err := f.svc.Approve(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestBookingService_Approve_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := f.svc.Approve(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

// --- Reject ---

func TestBookingService_Reject_Success(t *testing.T) {
	f := newBookingFixture(t)

	rejected := &domain.Booking{
		ID: "b1", VenueID: "v1", BorrowerID: "u1",
		Status: domain.BookingStatusRejected, RejectionReason: "venue under repair",
	}
	borrower := &domain.Borrower{ID: "u1"}
	venue := &domain.Venue{ID: "v1"}

	f.bookingRepo.EXPECT().Reject(mock.Anything, "b1", "venue under repair").Return(rejected, nil)
	f.borrowerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(borrower, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.notifier.EXPECT().NotifyBookingRejected(mock.Anything, borrower, venue, rejected).Return()
	f.publisher.EXPECT().PublishJSON(mock.Anything, "booking.rejected", rejected).Return(nil)

	got, err := f.svc.Reject(context.Background(), "b1", "venue under repair")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Reject_MissingReason(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Reject(context.Background(), "b1", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- MarkPaid ---

func TestBookingService_MarkPaid_Success(t *testing.T) {
	f := newBookingFixture(t)

	payment := &domain.Payment{
		ID: "p1", BookingID: "b1", Amount: 300000, ServiceFee: 5000,
		Status: domain.PaymentStatusUnpaid,
	}
	paid := &domain.Payment{
		ID: "p1", BookingID: "b1", Amount: 300000, ServiceFee: 5000,
		Status: domain.PaymentStatusPaid, GatewayRef: "chrg_1",
	}
	booking := &domain.Booking{ID: "b1", VenueID: "v1", BorrowerID: "u1", Status: domain.BookingStatusApproved}
	borrower := &domain.Borrower{ID: "u1"}
	venue := &domain.Venue{ID: "v1"}

	f.paymentRepo.EXPECT().GetByBooking(mock.Anything, "b1").Return(payment, nil)
	f.paymentRepo.EXPECT().MarkPaid(mock.Anything, "b1", "chrg_1", "credit_card", mock.Anything).Return(paid, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.borrowerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(borrower, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.notifier.EXPECT().NotifyPaymentReceived(mock.Anything, borrower, venue, booking).Return()
	f.publisher.EXPECT().PublishJSON(mock.Anything, "payment.paid", paid).Return(nil)

	err := f.svc.MarkPaid(context.Background(), domain.PaymentConfirmation{
		BookingID:  "b1",
		GatewayRef: "chrg_1",
		Method:     "credit_card",
		Amount:     305000,
	})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_MarkPaid_DuplicateIsNoOp(t *testing.T) {
	f := newBookingFixture(t)

	paid := &domain.Payment{ID: "p1", BookingID: "b1", Status: domain.PaymentStatusPaid, GatewayRef: "chrg_1"}
	f.paymentRepo.EXPECT().GetByBooking(mock.Anything, "b1").Return(paid, nil)

	err := f.svc.MarkPaid(context.Background(), domain.PaymentConfirmation{
		BookingID:  "b1",
		GatewayRef: "chrg_1",
	})

	require.NoError(t, err)
}

func TestBookingService_MarkPaid_LostRaceAbsorbed(t *testing.T) {
	f := newBookingFixture(t)

	unpaid := &domain.Payment{ID: "p1", BookingID: "b1", Status: domain.PaymentStatusUnpaid}
	paid := &domain.Payment{ID: "p1", BookingID: "b1", Status: domain.PaymentStatusPaid}

	f.paymentRepo.EXPECT().GetByBooking(mock.Anything, "b1").Return(unpaid, nil).Once()
	f.paymentRepo.EXPECT().MarkPaid(mock.Anything, "b1", "chrg_1", "", mock.Anything).
		Return(nil, &domain.InvalidTransitionError{Entity: "payment", From: "paid", To: "paid"})
	f.paymentRepo.EXPECT().GetByBooking(mock.Anything, "b1").Return(paid, nil).Once()

	err := f.svc.MarkPaid(context.Background(), domain.PaymentConfirmation{
		BookingID:  "b1",
		GatewayRef: "chrg_1",
	})

	require.NoError(t, err)
}

func TestBookingService_MarkPaid_PaymentNotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.paymentRepo.EXPECT().GetByBooking(mock.Anything, "b1").Return(nil, domain.ErrPaymentNotFound)

	err := f.svc.MarkPaid(context.Background(), domain.PaymentConfirmation{BookingID: "b1", GatewayRef: "chrg_1"})

	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

// --- CancelWithRefund ---

func TestBookingService_CancelWithRefund_Success(t *testing.T) {
	f := newBookingFixture(t)

	payment := &domain.Payment{
		ID: "p1", BookingID: "b1", Amount: 300000, ServiceFee: 5000,
		Status: domain.PaymentStatusPaid, GatewayRef: "chrg_1",
	}
	cancelled := &domain.Booking{
		ID: "b1", VenueID: "v1", BorrowerID: "u1",
		Status: domain.BookingStatusRejected, RejectionReason: "plans changed",
	}
	borrower := &domain.Borrower{ID: "u1"}
	venue := &domain.Venue{ID: "v1"}

	f.paymentRepo.EXPECT().GetByBooking(mock.Anything, "b1").Return(payment, nil)
	f.bookingRepo.EXPECT().CancelWithRefund(mock.Anything, "b1", "plans changed", mock.Anything, mock.Anything).
		Return(cancelled, nil)
	f.borrowerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(borrower, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.notifier.EXPECT().NotifyBookingRejected(mock.Anything, borrower, venue, cancelled).Return()
	f.publisher.EXPECT().PublishJSON(mock.Anything, "payment.refunded", mock.Anything).Return(nil)
	f.gateway.EXPECT().CreateRefund(mock.Anything, "chrg_1", int64(305000)).Return("rfnd_1", nil)
	f.paymentRepo.EXPECT().SettleRefund(mock.Anything, mock.Anything).Return(nil)

	refund, err := f.svc.CancelWithRefund(context.Background(), "b1", "plans changed")

	require.NoError(t, err)
	assert.Equal(t, domain.RefundStatusPending, refund.Status)
	assert.Equal(t, int64(305000), refund.Amount, "full amount incl. service fee")
	assert.Equal(t, "p1", refund.PaymentID)

	time.Sleep(100 * time.Millisecond) // goroutines: notify + gateway refund
}

func TestBookingService_CancelWithRefund_MissingReason(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CancelWithRefund(context.Background(), "b1", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CancelWithRefund_NotPaid(t *testing.T) {
	f := newBookingFixture(t)

	unpaid := &domain.Payment{ID: "p1", BookingID: "b1", Status: domain.PaymentStatusUnpaid}

	f.paymentRepo.EXPECT().GetByBooking(mock.Anything, "b1").Return(unpaid, nil)
	f.bookingRepo.EXPECT().CancelWithRefund(mock.Anything, "b1", "too late", mock.Anything, mock.Anything).
		Return(nil, &domain.InvalidTransitionError{Entity: "payment", From: "unpaid", To: "settled"})

	_, err := f.svc.CancelWithRefund(context.Background(), "b1", "too late")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// --- SettleRefund ---

func TestBookingService_SettleRefund(t *testing.T) {
	f := newBookingFixture(t)

	f.paymentRepo.EXPECT().SettleRefund(mock.Anything, "r1").Return(nil)

	require.NoError(t, f.svc.SettleRefund(context.Background(), "r1"))
}

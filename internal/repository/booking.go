package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, venue_id, borrower_id, activity, document_ref,
		start_date, end_date, start_minute, end_minute,
		status, rejection_reason, created_at, updated_at`

// windowEndExpr computes the instant a booking's last slot ends. Keep in
// sync with domain.TimeWindow.EndsAt.
const windowEndExpr = `(b.end_date + make_interval(mins => b.end_minute))`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func bindingStatusStrings() []string {
	out := make([]string, len(domain.BindingStatuses))
	for i, s := range domain.BindingStatuses {
		out[i] = string(s)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.VenueID, &b.BorrowerID, &b.Activity, &b.DocumentRef,
		&b.Window.StartDate, &b.Window.EndDate, &b.Window.StartTime, &b.Window.EndTime,
		&b.Status, &b.RejectionReason, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.VenueID, b.BorrowerID, b.Activity, b.DocumentRef,
		b.Window.StartDate, b.Window.EndDate, b.Window.StartTime, b.Window.EndTime,
		b.Status, b.RejectionReason, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) ListBinding(ctx context.Context, venueID, excludeID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE venue_id = $1 AND status = ANY($2) AND ($3 = '' OR id <> $3)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID, pq.Array(bindingStatusStrings()), excludeID)
	if err != nil {
		return nil, fmt.Errorf("list binding bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListForVenue(ctx context.Context, venueID string, from, to time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE venue_id = $1 AND start_date <= $3 AND end_date >= $2
			  ORDER BY start_date, start_minute`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list bookings for venue: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByBorrower(ctx context.Context, borrowerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE borrower_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by borrower: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

// Approve runs availability-check-and-approve as one serializable unit. The
// venue row lock serializes concurrent approvals per venue, so of two
// overlapping PROCESSING bookings exactly one can win.
func (r *BookingRepository) Approve(ctx context.Context, bookingID string, p *domain.Payment) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	b, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if err = b.Approve(); err != nil {
		return nil, err
	}

	var venueID string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = $1 FOR UPDATE`, b.VenueID).Scan(&venueID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("lock venue: %w", err)
	}

	// Mirrors domain.TimeWindow.Overlaps: inclusive dates, half-open minutes.
	conflictQuery := `SELECT b.id FROM bookings b
					  WHERE b.venue_id = $1 AND b.id <> $2 AND b.status = ANY($3)
					    AND b.start_date <= $5 AND $4 <= b.end_date
					    AND b.start_minute < $7 AND $6 < b.end_minute
					  LIMIT 1`
	var conflictID string
	err = tx.QueryRowContext(
		ctx, conflictQuery,
		b.VenueID, b.ID, pq.Array(bindingStatusStrings()),
		b.Window.StartDate, b.Window.EndDate, b.Window.StartTime, b.Window.EndTime,
	).Scan(&conflictID)
	if err == nil {
		return nil, domain.ErrSlotConflict
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check conflicts: %w", err)
	}

	b.UpdatedAt = p.CreatedAt
	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		b.ID, b.Status, b.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	paymentQuery := `INSERT INTO payments
			(id, booking_id, amount, service_fee, status, gateway_ref, invoice_number, method, deadline, paid_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if _, err = tx.ExecContext(
		ctx, paymentQuery,
		p.ID, p.BookingID, p.Amount, p.ServiceFee, p.Status,
		p.GatewayRef, p.InvoiceNumber, p.Method, p.Deadline, p.PaidAt,
		p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) Reject(ctx context.Context, bookingID, reason string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	b, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if err = b.Reject(reason); err != nil {
		return nil, err
	}

	b.UpdatedAt = time.Now().UTC()
	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, rejection_reason = $3, updated_at = $4 WHERE id = $1`,
		b.ID, b.Status, b.RejectionReason, b.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return b, nil
}

// Complete applies the time-driven completion. The domain guard runs on rows
// locked in this transaction, so a racing webhook or second sweep run sees a
// clean InvalidTransitionError instead of double-applying.
func (r *BookingRepository) Complete(ctx context.Context, bookingID string, now time.Time) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	b, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	p, err := lockPayment(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if err = b.Complete(p, now); err != nil {
		return nil, err
	}

	b.UpdatedAt = now
	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		b.ID, b.Status, now,
	); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return b, nil
}

// ExpirePayment expires an unpaid payment past its deadline and the booking
// with it, freeing the slot for other PROCESSING requests.
func (r *BookingRepository) ExpirePayment(ctx context.Context, bookingID string, now time.Time) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	b, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	p, err := lockPayment(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if err = b.ExpireUnpaid(p, now); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE payments SET status = $2, updated_at = $3 WHERE booking_id = $1`,
		b.ID, p.Status, now,
	); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	b.UpdatedAt = now
	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		b.ID, b.Status, now,
	); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) CancelWithRefund(ctx context.Context, bookingID, reason string, refund *domain.Refund, now time.Time) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	b, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	p, err := lockPayment(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}

	if p.Status != domain.PaymentStatusPaid {
		return nil, &domain.InvalidTransitionError{
			Entity: "payment",
			From:   string(p.Status),
			To:     string(domain.PaymentStatusSettled),
		}
	}
	if !now.Before(b.Window.StartsAt()) {
		return nil, fmt.Errorf("%w: event already started", domain.ErrValidation)
	}
	if err = b.CancelRefunded(reason); err != nil {
		return nil, err
	}

	refundQuery := `INSERT INTO refunds (id, payment_id, amount, reason, status, refund_date, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(
		ctx, refundQuery,
		refund.ID, refund.PaymentID, refund.Amount, refund.Reason,
		refund.Status, refund.RefundDate, refund.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert refund: %w", err)
	}

	b.UpdatedAt = now
	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, rejection_reason = $3, updated_at = $4 WHERE id = $1`,
		b.ID, b.Status, b.RejectionReason, now,
	); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) DueCompletions(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + qualifiedBookingColumns + `
			  FROM bookings b
			  JOIN payments p ON p.booking_id = b.id
			  WHERE b.status = $1 AND p.status = $2
			    AND ` + windowEndExpr + ` <= timezone('UTC', $3::timestamptz)`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusApproved, domain.PaymentStatusPaid, now,
	)
	if err != nil {
		return nil, fmt.Errorf("list due completions: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) DueExpirations(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + qualifiedBookingColumns + `
			  FROM bookings b
			  JOIN payments p ON p.booking_id = b.id
			  WHERE b.status = $1 AND p.status = ANY($2) AND p.deadline <= $3`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusApproved, pq.Array(payableStatusStrings()), now,
	)
	if err != nil {
		return nil, fmt.Errorf("list due expirations: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

const qualifiedBookingColumns = `b.id, b.venue_id, b.borrower_id, b.activity, b.document_ref,
		b.start_date, b.end_date, b.start_minute, b.end_minute,
		b.status, b.rejection_reason, b.created_at, b.updated_at`

func payableStatusStrings() []string {
	out := make([]string, len(domain.PayableStatuses))
	for i, s := range domain.PayableStatuses {
		out[i] = string(s)
	}
	return out
}

func lockBooking(ctx context.Context, tx *sql.Tx, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}
	return b, nil
}

func lockPayment(ctx context.Context, tx *sql.Tx, bookingID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 FOR UPDATE`
	p, err := scanPayment(tx.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("lock payment: %w", err)
	}
	return p, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const paymentColumns = `id, booking_id, amount, service_fee, status,
		gateway_ref, invoice_number, method, deadline, paid_at, created_at, updated_at`

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID, &p.BookingID, &p.Amount, &p.ServiceFee, &p.Status,
		&p.GatewayRef, &p.InvoiceNumber, &p.Method, &p.Deadline, &p.PaidAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByBooking(ctx context.Context, bookingID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}

// MarkPaid applies a gateway confirmation. The booking row is locked first,
// serializing against the sweep and concurrent approvals on the same
// booking; the payment guard then rejects anything that is not a first
// UNPAID/PENDING -> PAID transition.
func (r *PaymentRepository) MarkPaid(ctx context.Context, bookingID, gatewayRef, method string, now time.Time) (*domain.Payment, error) {
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

	if b.Status != domain.BookingStatusApproved {
		return nil, &domain.InvalidTransitionError{
			Entity: "payment",
			From:   string(p.Status),
			To:     string(domain.PaymentStatusPaid),
		}
	}
	if err = p.MarkPaid(gatewayRef, method, now); err != nil {
		return nil, err
	}

	p.UpdatedAt = now
	query := `UPDATE payments
			  SET status = $2, gateway_ref = $3, method = $4, paid_at = $5, updated_at = $6
			  WHERE booking_id = $1`
	if _, err = tx.ExecContext(ctx, query, bookingID, p.Status, p.GatewayRef, p.Method, p.PaidAt, now); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}

func (r *PaymentRepository) GetRefund(ctx context.Context, id string) (*domain.Refund, error) {
	query := `SELECT id, payment_id, amount, reason, status, refund_date, created_at
			  FROM refunds WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get refund: %w", err)
	}

	var rf domain.Refund
	if err = row.Scan(&rf.ID, &rf.PaymentID, &rf.Amount, &rf.Reason, &rf.Status, &rf.RefundDate, &rf.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRefundNotFound
		}
		return nil, fmt.Errorf("scan refund: %w", err)
	}
	return &rf, nil
}

// SettleRefund completes a pending refund and settles its payment. Settling
// an already-completed refund is a no-op so retries stay safe.
func (r *PaymentRepository) SettleRefund(ctx context.Context, refundID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var rf domain.Refund
	query := `SELECT id, payment_id, amount, reason, status, refund_date, created_at
			  FROM refunds WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, query, refundID).Scan(
		&rf.ID, &rf.PaymentID, &rf.Amount, &rf.Reason, &rf.Status, &rf.RefundDate, &rf.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRefundNotFound
		}
		return fmt.Errorf("lock refund: %w", err)
	}

	if rf.Status == domain.RefundStatusCompleted {
		return nil
	}

	var p domain.Payment
	if err = tx.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1 FOR UPDATE`, rf.PaymentID,
	).Scan(
		&p.ID, &p.BookingID, &p.Amount, &p.ServiceFee, &p.Status,
		&p.GatewayRef, &p.InvoiceNumber, &p.Method, &p.Deadline, &p.PaidAt,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPaymentNotFound
		}
		return fmt.Errorf("lock payment: %w", err)
	}

	if err = p.Settle(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if _, err = tx.ExecContext(ctx,
		`UPDATE refunds SET status = $2 WHERE id = $1`,
		refundID, domain.RefundStatusCompleted,
	); err != nil {
		return fmt.Errorf("update refund: %w", err)
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE payments SET status = $2, updated_at = $3 WHERE id = $1`,
		p.ID, p.Status, now,
	); err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	return tx.Commit()
}

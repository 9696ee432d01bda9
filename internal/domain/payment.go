package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusExpired PaymentStatus = "expired"
	PaymentStatusSettled PaymentStatus = "settled"
)

// PayableStatuses are the payment states a gateway confirmation may land on.
var PayableStatuses = []PaymentStatus{PaymentStatusUnpaid, PaymentStatusPending}

// Payment is the ledger record attached 1:1 to an approved booking. It may
// transition to PAID exactly once and is immutable afterwards except for
// refund settlement.
type Payment struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"booking_id"`
	Amount        int64         `json:"amount"` // minor units
	ServiceFee    int64         `json:"service_fee"`
	Status        PaymentStatus `json:"status"`
	GatewayRef    string        `json:"gateway_ref,omitempty"`
	InvoiceNumber string        `json:"invoice_number"`
	Method        string        `json:"method,omitempty"`
	Deadline      time.Time     `json:"deadline"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (p *Payment) Total() int64 {
	return p.Amount + p.ServiceFee
}

func (p *Payment) IsPaid() bool {
	// A settled payment was paid before its refund completed.
	return p.Status == PaymentStatusPaid || p.Status == PaymentStatusSettled
}

func (p *Payment) IsPayable() bool {
	return p.Status == PaymentStatusUnpaid || p.Status == PaymentStatusPending
}

func (p *Payment) DeadlinePassed(now time.Time) bool {
	return !now.Before(p.Deadline)
}

// MarkPaid moves UNPAID/PENDING -> PAID, recording the gateway reference,
// method and paid-at instant.
func (p *Payment) MarkPaid(gatewayRef, method string, now time.Time) error {
	if !p.IsPayable() {
		return newPaymentTransitionErr(p.Status, PaymentStatusPaid)
	}
	p.Status = PaymentStatusPaid
	p.GatewayRef = gatewayRef
	p.Method = method
	paidAt := now
	p.PaidAt = &paidAt
	return nil
}

// Expire moves UNPAID/PENDING -> EXPIRED once the deadline passed.
func (p *Payment) Expire(now time.Time) error {
	if !p.IsPayable() || !p.DeadlinePassed(now) {
		return newPaymentTransitionErr(p.Status, PaymentStatusExpired)
	}
	p.Status = PaymentStatusExpired
	return nil
}

// Settle moves PAID -> SETTLED once the attached refund completed.
func (p *Payment) Settle() error {
	if p.Status != PaymentStatusPaid {
		return newPaymentTransitionErr(p.Status, PaymentStatusSettled)
	}
	p.Status = PaymentStatusSettled
	return nil
}

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusCompleted RefundStatus = "completed"
)

// Refund records money returned after a post-payment cancellation. Created
// only from a PAID payment.
type Refund struct {
	ID         string       `json:"id"`
	PaymentID  string       `json:"payment_id"`
	Amount     int64        `json:"amount"`
	Reason     string       `json:"reason"`
	Status     RefundStatus `json:"status"`
	RefundDate time.Time    `json:"refund_date"`
	CreatedAt  time.Time    `json:"created_at"`
}

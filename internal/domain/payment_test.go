package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment_MarkPaid(t *testing.T) {
	now := time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)

	p := &Payment{Status: PaymentStatusUnpaid}
	require.NoError(t, p.MarkPaid("chrg_1", "credit_card", now))
	assert.Equal(t, PaymentStatusPaid, p.Status)
	assert.Equal(t, "chrg_1", p.GatewayRef)
	assert.Equal(t, "credit_card", p.Method)
	require.NotNil(t, p.PaidAt)
	assert.Equal(t, now, *p.PaidAt)

	// Second confirmation bounces.
	assert.ErrorIs(t, p.MarkPaid("chrg_2", "credit_card", now), ErrInvalidTransition)
	assert.Equal(t, "chrg_1", p.GatewayRef)

	p = &Payment{Status: PaymentStatusPending}
	require.NoError(t, p.MarkPaid("chrg_3", "transfer", now))

	for _, status := range []PaymentStatus{PaymentStatusExpired, PaymentStatusSettled} {
		p := &Payment{Status: status}
		assert.ErrorIs(t, p.MarkPaid("chrg_4", "transfer", now), ErrInvalidTransition)
	}
}

func TestPayment_Expire(t *testing.T) {
	deadline := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)

	p := &Payment{Status: PaymentStatusUnpaid, Deadline: deadline}
	require.NoError(t, p.Expire(deadline))
	assert.Equal(t, PaymentStatusExpired, p.Status)

	p = &Payment{Status: PaymentStatusUnpaid, Deadline: deadline}
	assert.ErrorIs(t, p.Expire(deadline.Add(-time.Second)), ErrInvalidTransition)

	p = &Payment{Status: PaymentStatusPaid, Deadline: deadline}
	assert.ErrorIs(t, p.Expire(deadline.Add(time.Hour)), ErrInvalidTransition)
}

func TestPayment_Settle(t *testing.T) {
	p := &Payment{Status: PaymentStatusPaid}
	require.NoError(t, p.Settle())
	assert.Equal(t, PaymentStatusSettled, p.Status)

	for _, status := range []PaymentStatus{PaymentStatusUnpaid, PaymentStatusPending, PaymentStatusExpired, PaymentStatusSettled} {
		p := &Payment{Status: status}
		assert.ErrorIs(t, p.Settle(), ErrInvalidTransition)
	}
}

func TestPayment_Total(t *testing.T) {
	p := &Payment{Amount: 150000, ServiceFee: 5000}
	assert.Equal(t, int64(155000), p.Total())
}

func TestPayment_IsPaid(t *testing.T) {
	assert.True(t, (&Payment{Status: PaymentStatusPaid}).IsPaid())
	assert.True(t, (&Payment{Status: PaymentStatusSettled}).IsPaid())
	assert.False(t, (&Payment{Status: PaymentStatusUnpaid}).IsPaid())
	assert.False(t, (&Payment{Status: PaymentStatusPending}).IsPaid())
	assert.False(t, (&Payment{Status: PaymentStatusExpired}).IsPaid())
}

package dto

import (
	"time"

	"github.com/howlil/VenueBooker/internal/domain"
)

type WindowResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type BookingResponse struct {
	ID              string         `json:"id"`
	VenueID         string         `json:"venue_id"`
	BorrowerID      string         `json:"borrower_id"`
	Activity        string         `json:"activity"`
	DocumentRef     string         `json:"document_ref,omitempty"`
	Window          WindowResponse `json:"window"`
	Status          string         `json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	CreatedAt       string         `json:"created_at"`
}

type RefundResponse struct {
	ID         string `json:"id"`
	PaymentID  string `json:"payment_id"`
	Amount     int64  `json:"amount"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	RefundDate string `json:"refund_date"`
}

type VenueResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Rate      int64  `json:"rate"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

type BorrowerResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToWindowResponse(w domain.TimeWindow) WindowResponse {
	return WindowResponse{
		StartDate: w.StartDate.Format("2006-01-02"),
		EndDate:   w.EndDate.Format("2006-01-02"),
		StartTime: domain.FormatClock(w.StartTime),
		EndTime:   domain.FormatClock(w.EndTime),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		VenueID:         b.VenueID,
		BorrowerID:      b.BorrowerID,
		Activity:        b.Activity,
		DocumentRef:     b.DocumentRef,
		Window:          ToWindowResponse(b.Window),
		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func ToRefundResponse(r *domain.Refund) RefundResponse {
	return RefundResponse{
		ID:         r.ID,
		PaymentID:  r.PaymentID,
		Amount:     r.Amount,
		Reason:     r.Reason,
		Status:     string(r.Status),
		RefundDate: r.RefundDate.Format(time.RFC3339),
	}
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Capacity:  v.Capacity,
		Rate:      v.Rate,
		Type:      v.Type,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}

func ToBorrowerResponse(b *domain.Borrower) BorrowerResponse {
	return BorrowerResponse{
		ID:             b.ID,
		Name:           b.Name,
		TelegramChatID: b.TelegramChatID,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

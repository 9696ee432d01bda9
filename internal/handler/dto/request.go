package dto

import "github.com/howlil/VenueBooker/internal/domain"

type ReserveRequest struct {
	VenueID     string `json:"venue_id" binding:"required,uuid"`
	BorrowerID  string `json:"borrower_id" binding:"required,uuid"`
	Activity    string `json:"activity" binding:"required"`
	DocumentRef string `json:"document_ref"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

// Window parses the request's date and HH:MM fields into a TimeWindow.
func (r ReserveRequest) Window() (domain.TimeWindow, error) {
	return ParseWindow(r.StartDate, r.EndDate, r.StartTime, r.EndTime)
}

func ParseWindow(startDate, endDate, startTime, endTime string) (domain.TimeWindow, error) {
	var w domain.TimeWindow
	var err error

	if w.StartDate, err = domain.ParseDate(startDate); err != nil {
		return w, err
	}
	if w.EndDate, err = domain.ParseDate(endDate); err != nil {
		return w, err
	}
	if w.StartTime, err = domain.ParseClock(startTime); err != nil {
		return w, err
	}
	if w.EndTime, err = domain.ParseClock(endTime); err != nil {
		return w, err
	}
	return w, nil
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// PaymentWebhookRequest is the gateway callback payload. The surrounding
// webhook handler is assumed to have verified the signature already.
type PaymentWebhookRequest struct {
	BookingID  string `json:"booking_id" binding:"required,uuid"`
	GatewayRef string `json:"gateway_ref" binding:"required"`
	Method     string `json:"method"`
	Amount     int64  `json:"amount"`
}

type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Rate     int64  `json:"rate" binding:"min=0"`
	Type     string `json:"type"`
}

type CreateBorrowerRequest struct {
	Name           string `json:"name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

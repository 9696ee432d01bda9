package domain

// ReserveInput carries a borrower's reservation request.
type ReserveInput struct {
	VenueID     string
	BorrowerID  string
	Activity    string
	DocumentRef string
	Window      TimeWindow
}

// PaymentConfirmation is the payload reported by the payment gateway's
// webhook handler after it verified the callback.
type PaymentConfirmation struct {
	BookingID  string
	GatewayRef string
	Method     string
	Amount     int64
}

// SweepResult counts the transitions one sweep run applied.
type SweepResult struct {
	Completed int `json:"completed"`
	Expired   int `json:"expired"`
}

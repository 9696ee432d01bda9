package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/howlil/VenueBooker/internal/handler/dto"
	hmocks "github.com/howlil/VenueBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockVenueSvc, *hmocks.MockBorrowerSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	venueSvc := hmocks.NewMockVenueSvc(t)
	borrowerSvc := hmocks.NewMockBorrowerSvc(t)

	h := NewHandler(bookingSvc, venueSvc, borrowerSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.GET("/venues/:id/availability", h.CheckAvailability)
		api.GET("/venues/:id/bookings", h.ListVenueBookings)
		api.POST("/bookings", h.Reserve)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/reject", h.RejectBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/payments/webhook", h.PaymentWebhook)
		api.POST("/borrowers", h.CreateBorrower)
		api.GET("/borrowers", h.ListBorrowers)
		api.GET("/borrowers/:id/bookings", h.GetBorrowerBookings)
	}

	return bookingSvc, venueSvc, borrowerSvc, r
}

func sampleBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         uuid.New().String(),
		VenueID:    uuid.New().String(),
		BorrowerID: uuid.New().String(),
		Activity:   "Team offsite",
		Window: domain.TimeWindow{
			StartDate: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			StartTime: 8 * 60,
			EndTime:   10 * 60,
		},
		Status:    status,
		CreatedAt: time.Now(),
	}
}

// --- Venues ---

func TestHandler_CreateVenue_Success(t *testing.T) {
	_, venueSvc, _, r := setupRouter(t)

	venue := &domain.Venue{
		ID:        uuid.New().String(),
		Name:      "Hall A",
		Capacity:  200,
		Rate:      150000,
		Type:      "auditorium",
		CreatedAt: time.Now(),
	}
	venueSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(venue, nil)

	body, _ := json.Marshal(dto.CreateVenueRequest{
		Name:     "Hall A",
		Capacity: 200,
		Rate:     150000,
		Type:     "auditorium",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/venues", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hall A", resp.Name)
}

func TestHandler_CreateVenue_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/venues", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetVenue_NotFound(t *testing.T) {
	_, venueSvc, _, r := setupRouter(t)

	venueID := uuid.New().String()
	venueSvc.EXPECT().GetByID(mock.Anything, venueID).Return(nil, domain.ErrVenueNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/venues/"+venueID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetVenue_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/venues/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Availability ---

func TestHandler_CheckAvailability_Free(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	venueID := uuid.New().String()
	bookingSvc.EXPECT().IsAvailable(mock.Anything, venueID, mock.Anything, "").Return(true, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/venues/"+venueID+"/availability?start_date=2025-03-10&end_date=2025-03-10&start_time=08:00&end_time=10:00", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
}

func TestHandler_CheckAvailability_Busy(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	venueID := uuid.New().String()
	bookingSvc.EXPECT().IsAvailable(mock.Anything, venueID, mock.Anything, "").Return(false, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/venues/"+venueID+"/availability?start_date=2025-03-10&end_date=2025-03-10&start_time=09:00&end_time=11:00", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
}

func TestHandler_CheckAvailability_BadWindow(t *testing.T) {
	_, _, _, r := setupRouter(t)

	venueID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/venues/"+venueID+"/availability?start_date=2025-03-10&end_date=2025-03-10&start_time=late&end_time=later", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_Reserve_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusProcessing)
	bookingSvc.EXPECT().Reserve(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.ReserveRequest{
		VenueID:    booking.VenueID,
		BorrowerID: booking.BorrowerID,
		Activity:   "Team offsite",
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-10",
		StartTime:  "08:00",
		EndTime:    "10:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "processing", resp.Status)
	assert.Equal(t, "08:00", resp.Window.StartTime)
}

func TestHandler_Reserve_BadDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{
		"venue_id":"` + uuid.New().String() + `",
		"borrower_id":"` + uuid.New().String() + `",
		"activity":"X",
		"start_date":"10.03.2025","end_date":"2025-03-10",
		"start_time":"08:00","end_time":"10:00"
	}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusApproved)
	bookingSvc.EXPECT().Approve(mock.Anything, booking.ID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.ID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandler_ApproveBooking_Conflict(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Approve(mock.Anything, bookingID).Return(nil, domain.ErrSlotConflict)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ApproveBooking_WrongState(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Approve(mock.Anything, bookingID).
		Return(nil, &domain.InvalidTransitionError{Entity: "booking", From: "rejected", To: "approved"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RejectBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusRejected)
	booking.RejectionReason = "venue under repair"
	bookingSvc.EXPECT().Reject(mock.Anything, booking.ID, "venue under repair").Return(booking, nil)

	body, _ := json.Marshal(dto.RejectRequest{Reason: "venue under repair"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.ID+"/reject", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RejectBooking_MissingReason(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+uuid.New().String()+"/reject", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	refund := &domain.Refund{
		ID:         uuid.New().String(),
		PaymentID:  uuid.New().String(),
		Amount:     305000,
		Reason:     "plans changed",
		Status:     domain.RefundStatusPending,
		RefundDate: time.Now(),
	}
	bookingSvc.EXPECT().CancelWithRefund(mock.Anything, bookingID, "plans changed").Return(refund, nil)

	body, _ := json.Marshal(dto.CancelRequest{Reason: "plans changed"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RefundResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(305000), resp.Amount)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().GetBooking(mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Payments ---

func TestHandler_PaymentWebhook_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().MarkPaid(mock.Anything, domain.PaymentConfirmation{
		BookingID:  bookingID,
		GatewayRef: "chrg_1",
		Method:     "credit_card",
		Amount:     305000,
	}).Return(nil)

	body, _ := json.Marshal(dto.PaymentWebhookRequest{
		BookingID:  bookingID,
		GatewayRef: "chrg_1",
		Method:     "credit_card",
		Amount:     305000,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PaymentWebhook_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"gateway_ref":"chrg_1"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Borrowers ---

func TestHandler_CreateBorrower_Success(t *testing.T) {
	_, _, borrowerSvc, r := setupRouter(t)

	borrower := &domain.Borrower{
		ID:        uuid.New().String(),
		Name:      "Alice",
		CreatedAt: time.Now(),
	}
	borrowerSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(borrower, nil)

	body, _ := json.Marshal(dto.CreateBorrowerRequest{Name: "Alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/borrowers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BorrowerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
}

func TestHandler_GetBorrowerBookings_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	borrowerID := uuid.New().String()
	bookings := []*domain.Booking{sampleBooking(domain.BookingStatusProcessing)}
	bookingSvc.EXPECT().ListByBorrower(mock.Anything, borrowerID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/borrowers/"+borrowerID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListVenueBookings_DateFilter(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	venueID := uuid.New().String()
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	bookingSvc.EXPECT().ListForVenue(mock.Anything, venueID, from, to).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/venues/"+venueID+"/bookings?from=2025-03-01&to=2025-03-31", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_InternalError(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().GetBooking(mock.Anything, bookingID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

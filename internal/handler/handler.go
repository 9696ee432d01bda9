package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/howlil/VenueBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Reserve(ctx context.Context, input domain.ReserveInput) (*domain.Booking, error)
	Approve(ctx context.Context, bookingID string) (*domain.Booking, error)
	Reject(ctx context.Context, bookingID, reason string) (*domain.Booking, error)
	MarkPaid(ctx context.Context, conf domain.PaymentConfirmation) error
	CancelWithRefund(ctx context.Context, bookingID, reason string) (*domain.Refund, error)
	IsAvailable(ctx context.Context, venueID string, window domain.TimeWindow, excludeID string) (bool, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListForVenue(ctx context.Context, venueID string, from, to time.Time) ([]*domain.Booking, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]*domain.Booking, error)
}

type VenueSvc interface {
	Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error)
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}

type BorrowerSvc interface {
	Create(ctx context.Context, input domain.CreateBorrowerInput) (*domain.Borrower, error)
	List(ctx context.Context) ([]*domain.Borrower, error)
}

type Handler struct {
	bookingService  BookingSvc
	venueService    VenueSvc
	borrowerService BorrowerSvc
}

func NewHandler(bookingService BookingSvc, venueService VenueSvc, borrowerService BorrowerSvc) *Handler {
	return &Handler{
		bookingService:  bookingService,
		venueService:    venueService,
		borrowerService: borrowerService,
	}
}

// Venues

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.venueService.Create(c.Request.Context(), domain.CreateVenueInput{
		Name:     req.Name,
		Capacity: req.Capacity,
		Rate:     req.Rate,
		Type:     req.Type,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) GetVenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	venue, err := h.venueService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.venueService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

// CheckAvailability answers whether a candidate window is free of binding
// bookings. Window comes in as query parameters.
func (h *Handler) CheckAvailability(c *ginext.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	window, err := dto.ParseWindow(
		c.Query("start_date"), c.Query("end_date"),
		c.Query("start_time"), c.Query("end_time"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	available, err := h.bookingService.IsAvailable(c.Request.Context(), venueID, window, c.Query("exclude_booking_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{Available: available})
}

func (h *Handler) ListVenueBookings(c *ginext.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	from, to, err := dateRangeParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookings, err := h.bookingService.ListForVenue(c.Request.Context(), venueID, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Bookings

func (h *Handler) Reserve(c *ginext.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	window, err := req.Window()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Reserve(c.Request.Context(), domain.ReserveInput{
		VenueID:     req.VenueID,
		BorrowerID:  req.BorrowerID,
		Activity:    req.Activity,
		DocumentRef: req.DocumentRef,
		Window:      window,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Approve(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	refund, err := h.bookingService.CancelWithRefund(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRefundResponse(refund))
}

// PaymentWebhook receives the gateway confirmation. Authenticity is
// verified upstream; duplicate deliveries return 200 like first deliveries.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	var req dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.bookingService.MarkPaid(c.Request.Context(), domain.PaymentConfirmation{
		BookingID:  req.BookingID,
		GatewayRef: req.GatewayRef,
		Method:     req.Method,
		Amount:     req.Amount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// Borrowers

func (h *Handler) CreateBorrower(c *ginext.Context) {
	var req dto.CreateBorrowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	borrower, err := h.borrowerService.Create(c.Request.Context(), domain.CreateBorrowerInput{
		Name:           req.Name,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBorrowerResponse(borrower))
}

func (h *Handler) ListBorrowers(c *ginext.Context) {
	borrowers, err := h.borrowerService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BorrowerResponse, 0, len(borrowers))
	for _, b := range borrowers {
		resp = append(resp, dto.ToBorrowerResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBorrowerBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid borrower id"})
		return
	}

	bookings, err := h.bookingService.ListByBorrower(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func dateRangeParams(c *ginext.Context) (time.Time, time.Time, error) {
	from := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

	if s := c.Query("from"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return from, to, err
		}
		from = d
	}
	if s := c.Query("to"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return from, to, err
		}
		to = d
	}
	return from, to, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrBorrowerNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrRefundNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotConflict),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

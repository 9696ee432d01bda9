package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateVenue(c *ginext.Context)
	GetVenue(c *ginext.Context)
	ListVenues(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	ListVenueBookings(c *ginext.Context)
	Reserve(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
	CreateBorrower(c *ginext.Context)
	ListBorrowers(c *ginext.Context)
	GetBorrowerBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Venues
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.GET("/venues/:id/availability", h.CheckAvailability)
		api.GET("/venues/:id/bookings", h.ListVenueBookings)

		// Bookings
		api.POST("/bookings", h.Reserve)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/reject", h.RejectBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Payments
		api.POST("/payments/webhook", h.PaymentWebhook)

		// Borrowers
		api.POST("/borrowers", h.CreateBorrower)
		api.GET("/borrowers", h.ListBorrowers)
		api.GET("/borrowers/:id/bookings", h.GetBorrowerBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/stayvista-api/internal/models"
)

func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Bookings.Create(c.Request.Context(), &booking)
	if err != nil {
		h.storeError(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetHostBookings lists bookings made on the host's rooms.
func (h *Handler) GetHostBookings(c *gin.Context) {
	h.listBookings(c, func(email string) models.BookingFilter {
		return models.BookingFilter{HostEmail: email}
	})
}

// GetGuestBookings lists bookings made by the guest.
func (h *Handler) GetGuestBookings(c *gin.Context) {
	h.listBookings(c, func(email string) models.BookingFilter {
		return models.BookingFilter{GuestEmail: email}
	})
}

func (h *Handler) listBookings(c *gin.Context, filterFor func(string) models.BookingFilter) {
	email, ok := bindEmail(c)
	if !ok {
		return
	}
	bookings, err := h.Bookings.Find(c.Request.Context(), filterFor(email))
	if err != nil {
		h.storeError(c, err, "Failed to retrieve bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	result, err := h.Bookings.Delete(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "Failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, result)
}

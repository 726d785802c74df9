package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/stayvista-api/internal/middleware"
	"github.com/harentsoaR/stayvista-api/internal/models"
	"github.com/harentsoaR/stayvista-api/internal/services"
)

type adminStats struct {
	models.SalesReport
	TotalUsers int64 `json:"totalUsers"`
	TotalRooms int64 `json:"totalRooms"`
}

type hostStats struct {
	models.SalesReport
	TotalRooms int64 `json:"totalRooms"`
	HostSince  int64 `json:"hostSince"`
}

type guestStats struct {
	models.SalesReport
	GuestSince int64 `json:"guestSince"`
}

func (h *Handler) AdminStat(c *gin.Context) {
	ctx := c.Request.Context()

	sales, err := h.Bookings.Sales(ctx, models.BookingFilter{})
	if err != nil {
		h.storeError(c, err, "Failed to load bookings")
		return
	}
	totalUsers, err := h.Users.Count(ctx)
	if err != nil {
		h.storeError(c, err, "Failed to count users")
		return
	}
	totalRooms, err := h.Rooms.Count(ctx, "")
	if err != nil {
		h.storeError(c, err, "Failed to count rooms")
		return
	}

	c.JSON(http.StatusOK, adminStats{
		SalesReport: services.BuildSalesReport(sales),
		TotalUsers:  totalUsers,
		TotalRooms:  totalRooms,
	})
}

func (h *Handler) HostStat(c *gin.Context) {
	ctx := c.Request.Context()
	email := middleware.CurrentEmail(c)

	sales, err := h.Bookings.Sales(ctx, models.BookingFilter{HostEmail: email})
	if err != nil {
		h.storeError(c, err, "Failed to load bookings")
		return
	}
	totalRooms, err := h.Rooms.Count(ctx, email)
	if err != nil {
		h.storeError(c, err, "Failed to count rooms")
		return
	}
	since, ok := h.memberSince(c, email)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, hostStats{
		SalesReport: services.BuildSalesReport(sales),
		TotalRooms:  totalRooms,
		HostSince:   since,
	})
}

func (h *Handler) GuestStat(c *gin.Context) {
	ctx := c.Request.Context()
	email := middleware.CurrentEmail(c)

	sales, err := h.Bookings.Sales(ctx, models.BookingFilter{GuestEmail: email})
	if err != nil {
		h.storeError(c, err, "Failed to load bookings")
		return
	}
	since, ok := h.memberSince(c, email)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, guestStats{
		SalesReport: services.BuildSalesReport(sales),
		GuestSince:  since,
	})
}

// memberSince returns the caller's account timestamp, 0 when the user
// has no stored record.
func (h *Handler) memberSince(c *gin.Context, email string) (int64, bool) {
	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.storeError(c, err, "Failed to load user")
		return 0, false
	}
	if user == nil {
		return 0, true
	}
	return user.Timestamp, true
}

package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/stayvista-api/internal/handlers"
	"github.com/harentsoaR/stayvista-api/internal/middleware"
	"github.com/harentsoaR/stayvista-api/internal/models"
	"github.com/harentsoaR/stayvista-api/internal/utils"
)

type Options struct {
	AllowOrigins []string
}

// New builds the gin engine with every route of the API.
func New(h *handlers.Handler, opts Options) (*gin.Engine, error) {
	if err := utils.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(h.Logger))

	if len(opts.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	verifyToken := middleware.VerifyToken(h.Tokens, h.Logger)
	verifyAdmin := middleware.RequireRole(models.RoleAdmin, h.Users, h.Logger)
	verifyHost := middleware.RequireRole(models.RoleHost, h.Users, h.Logger)

	r.GET("/", h.Home)

	// --- Auth ---
	r.POST("/jwt", h.IssueToken)
	r.GET("/logout", h.Logout)

	// --- Users ---
	r.PUT("/user", h.SaveUser)
	r.GET("/user/:email", h.GetUser)
	r.PATCH("/users/update/:email", h.UpdateUser)
	r.GET("/users", verifyToken, verifyAdmin, h.GetUsers)

	// --- Rooms ---
	r.GET("/rooms", h.GetRooms)
	r.GET("/room/:id", h.GetRoom)
	r.POST("/add-room", verifyToken, verifyHost, h.AddRoom)
	r.PUT("/room/update/:id", verifyToken, verifyHost, h.UpdateRoom)
	r.GET("/my-list/:email", verifyToken, verifyHost, h.GetHostRooms)
	r.DELETE("/room/:id", verifyToken, verifyHost, h.DeleteRoom)
	r.PATCH("/room/status/:id", h.UpdateRoomStatus)

	// --- Payments & bookings ---
	r.POST("/create-payment-intent", verifyToken, h.CreatePaymentIntent)
	r.POST("/booking", verifyToken, h.CreateBooking)
	r.GET("/manage-bookings/:email", verifyToken, verifyHost, h.GetHostBookings)
	r.GET("/my-bookings/:email", verifyToken, h.GetGuestBookings)
	r.DELETE("/booking/:id", verifyToken, h.DeleteBooking)

	// --- Statistics ---
	r.GET("/admin-stat", verifyToken, verifyAdmin, h.AdminStat)
	r.GET("/host-stat", verifyToken, verifyHost, h.HostStat)
	r.GET("/guest-stat", verifyToken, h.GuestStat)

	return r, nil
}

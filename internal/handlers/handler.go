package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/stayvista-api/internal/services"
	"github.com/harentsoaR/stayvista-api/internal/utils"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handler holds every dependency the route handlers need. Each route is a
// method on it.
type Handler struct {
	Users    services.UserService
	Rooms    services.RoomService
	Bookings services.BookingService
	Payments services.PaymentService
	Tokens   *utils.TokenManager
	Logger   *logrus.Logger

	// Production switches the auth cookie to Secure + SameSite=None.
	Production bool
}

func NewHandler(
	users services.UserService,
	rooms services.RoomService,
	bookings services.BookingService,
	payments services.PaymentService,
	tokens *utils.TokenManager,
	logger *logrus.Logger,
	production bool,
) *Handler {
	return &Handler{
		Users:      users,
		Rooms:      rooms,
		Bookings:   bookings,
		Payments:   payments,
		Tokens:     tokens,
		Logger:     logger,
		Production: production,
	}
}

// Home answers the root path so uptime checks have something to hit.
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Hello from StayVista Server..")
}

type idURI struct {
	ID string `uri:"id" binding:"required,objectid"`
}

type emailURI struct {
	Email string `uri:"email" binding:"required"`
}

// bindID reads the :id path parameter. It writes the 400 itself and
// reports false when the id is malformed.
func bindID(c *gin.Context) (primitive.ObjectID, bool) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return primitive.NilObjectID, false
	}
	id, _ := primitive.ObjectIDFromHex(uri.ID)
	return id, true
}

func bindEmail(c *gin.Context) (string, bool) {
	var uri emailURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return "", false
	}
	return uri.Email, true
}

// storeError logs a failed database call and answers 500.
func (h *Handler) storeError(c *gin.Context, err error, msg string) {
	h.Logger.WithFields(logrus.Fields{"path": c.FullPath()}).Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

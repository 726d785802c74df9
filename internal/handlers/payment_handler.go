package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/stayvista-api/internal/services"
	"github.com/sirupsen/logrus"
)

type paymentIntentRequest struct {
	Price *float64 `json:"price"`
}

// CreatePaymentIntent asks the payment gateway for an intent covering the
// posted price and hands the client secret back to the browser.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrInvalidPrice.Error()})
		return
	}

	amount, err := services.ToMinorUnits(*req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.Payments.CreatePaymentIntent(c.Request.Context(), amount)
	if err != nil {
		h.Logger.WithFields(logrus.Fields{"path": "handlers/create-payment-intent", "amount": amount}).Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment service returned an error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

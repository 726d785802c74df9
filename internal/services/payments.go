package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrInvalidPrice = errors.New("price must be a positive number")

type PaymentService interface {
	// CreatePaymentIntent charges amount minor currency units and returns
	// the intent's client secret.
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

// ToMinorUnits converts a decimal price into cents.
func ToMinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, ErrInvalidPrice
	}
	amount := int64(math.Round(price * 100))
	if amount < 1 {
		return 0, ErrInvalidPrice
	}
	return amount, nil
}

type StripePaymentService struct {
	api      *client.API
	currency stripe.Currency
	logger   *logrus.Logger
}

func NewStripePaymentService(secretKey string, logger *logrus.Logger) *StripePaymentService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripePaymentService{
		api:      api,
		currency: stripe.CurrencyUSD,
		logger:   logger,
	}
}

func (s *StripePaymentService) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(s.currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"path":   "services/payments",
		"intent": intent.ID,
		"amount": amount,
	}).Info("payment intent created")

	return intent.ClientSecret, nil
}

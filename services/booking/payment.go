package booking

import (
	"context"
	"fmt"
	"math"
	"strings"

	"homestay/config"
	"homestay/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"
)

// PaymentHandler captures and refunds booking payments.
type PaymentHandler interface {
	// Charge captures the booking total and returns a payment reference.
	Charge(ctx context.Context, booking *models.Booking, property *models.Property) (string, error)
	// Refund reverses the charge referenced by the booking.
	Refund(ctx context.Context, booking *models.Booking) error
}

// StripePaymentHandler implements PaymentHandler against Stripe. When no
// API key is configured the handler runs in simulated mode and only mints
// local references, which keeps development environments payment-free.
type StripePaymentHandler struct {
	logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) simulated() bool {
	return config.AppConfig.StripeKey == ""
}

func (h *StripePaymentHandler) Charge(ctx context.Context, booking *models.Booking, property *models.Property) (string, error) {
	if h.simulated() {
		ref := "sim_" + uuid.New().String()
		h.logger.Info("simulated payment capture",
			zap.String("bookingID", booking.ID), zap.String("ref", ref))
		return ref, nil
	}

	currency := property.Currency
	if currency == "" {
		currency = "usd"
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(booking.TotalPrice * 100))),
		Currency: stripe.String(strings.ToLower(currency)),
		Params: stripe.Params{
			Context: ctx,
			Metadata: map[string]string{
				"bookingID":  booking.ID,
				"propertyID": property.ID,
			},
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}

	h.logger.Info("payment captured",
		zap.String("bookingID", booking.ID), zap.String("paymentIntent", pi.ID))
	return pi.ID, nil
}

func (h *StripePaymentHandler) Refund(ctx context.Context, booking *models.Booking) error {
	if h.simulated() || strings.HasPrefix(booking.PaymentRef, "sim_") {
		h.logger.Info("simulated refund", zap.String("bookingID", booking.ID))
		return nil
	}
	if booking.PaymentRef == "" {
		return fmt.Errorf("booking %s has no payment reference to refund", booking.ID)
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(booking.PaymentRef),
		Params:        stripe.Params{Context: ctx},
	}
	if _, err := refund.New(params); err != nil {
		return fmt.Errorf("stripe refund failed: %w", err)
	}

	h.logger.Info("payment refunded",
		zap.String("bookingID", booking.ID), zap.String("paymentIntent", booking.PaymentRef))
	return nil
}

package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripePayments collects the holding fee through Stripe payment
// intents. The fee is charged once at booking creation and is
// non-refundable; no refund path exists here on purpose.
type StripePayments struct {
	Currency string
	Logger   *zap.Logger
}

func NewStripePayments(apiKey, currency string, logger *zap.Logger) *StripePayments {
	stripe.Key = apiKey
	if currency == "" {
		currency = "vnd"
	}
	return &StripePayments{Currency: currency, Logger: logger}
}

func (p *StripePayments) log() *zap.Logger {
	if p.Logger == nil {
		return zap.L()
	}
	return p.Logger
}

// CreateIntent opens a payment intent for the holding fee. paymentRef is
// the rental service's payment-initiation reference and travels in the
// intent metadata so the two sides can be reconciled.
func (p *StripePayments) CreateIntent(ctx context.Context, amount int64, paymentRef string) (string, string, error) {
	if amount <= 0 {
		return "", "", errors.New("invalid holding fee amount")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(p.Currency),
	}
	params.AddMetadata("payment_ref", paymentRef)
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		p.log().Error("failed to create payment intent", zap.Error(err))
		return "", "", fmt.Errorf("stripe: create payment intent: %w", err)
	}

	p.log().Info("holding fee payment intent created",
		zap.String("payment_intent_id", pi.ID),
		zap.Int64("amount", amount),
		zap.String("payment_ref", paymentRef),
	)
	return pi.ID, pi.ClientSecret, nil
}

// VerifyPaid confirms the intent actually settled before the booking is
// finalized.
func (p *StripePayments) VerifyPaid(ctx context.Context, intentID string) error {
	if intentID == "" {
		return errors.New("payment intent id is required")
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(intentID, params)
	if err != nil {
		return fmt.Errorf("stripe: retrieve payment intent: %w", err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("holding fee payment not completed (status %s)", pi.Status)
	}
	return nil
}

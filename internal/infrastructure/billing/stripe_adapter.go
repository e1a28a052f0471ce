package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"go.uber.org/zap"
)

// StripeAdapter implements Stripe payment operations
type StripeAdapter struct {
	config *StripeConfig
	logger *zap.Logger
}

// NewStripeAdapter creates a new Stripe adapter
func NewStripeAdapter(config *StripeConfig, logger *zap.Logger) (*StripeAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Initialize Stripe client
	config.InitStripeClient()

	return &StripeAdapter{
		config: config,
		logger: logger,
	}, nil
}

// CreateCheckoutSession creates a one-time payment checkout session in Stripe
func (a *StripeAdapter) CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (*CheckoutSessionOutput, error) {
	a.logger.Debug("Creating Stripe checkout session",
		zap.String("product", input.ProductName),
		zap.Int64("amount_cents", input.AmountCents),
		zap.Int64("quantity", input.Quantity))

	params := a.buildCheckoutParams(input)
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		a.logger.Error("Failed to create Stripe checkout session",
			zap.String("product", input.ProductName),
			zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}

	a.logger.Info("Created Stripe checkout session",
		zap.String("session_id", sess.ID),
		zap.String("product", input.ProductName))

	return &CheckoutSessionOutput{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// buildCheckoutParams translates a CheckoutSessionInput into Stripe params
func (a *StripeAdapter) buildCheckoutParams(input CheckoutSessionInput) *stripe.CheckoutSessionParams {
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(a.config.SuccessURL),
		CancelURL:  stripe.String(a.config.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(a.config.Currency),
					UnitAmount: stripe.Int64(input.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(input.ProductName),
						Description: stripe.String(input.Description),
					},
				},
				Quantity: stripe.Int64(quantity),
			},
		},
	}

	if input.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(input.CustomerEmail)
	}

	if len(input.Metadata) > 0 {
		params.Metadata = make(map[string]string, len(input.Metadata))
		for k, v := range input.Metadata {
			params.Metadata[k] = v
		}
	}

	return params
}

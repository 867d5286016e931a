package payments

import (
	"context"
	"time"

	"kasambahay_backend/pkg/apperrors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeProvider drives card payments through Stripe Billing. A
// subscribe call creates (or reuses) a customer and opens an incomplete
// subscription; the client confirms the returned PaymentIntent secret.
type StripeProvider struct {
	api           *client.API
	priceID       string
	webhookSecret string
}

func NewStripeProvider(secretKey, priceID, webhookSecret string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{
		api:           api,
		priceID:       priceID,
		webhookSecret: webhookSecret,
	}
}

func (p *StripeProvider) Name() string { return "stripe" }

func (p *StripeProvider) Supports(c Capability) bool {
	switch c {
	case CapabilitySubscribe, CapabilityCancel, CapabilityWebhooks:
		return true
	}
	return false
}

func (p *StripeProvider) Subscribe(ctx context.Context, params SubscribeParams) (*Result, error) {
	customerID := params.CustomerID
	if customerID == "" {
		cust, err := p.api.Customers.New(&stripe.CustomerParams{
			Email: stripe.String(params.CustomerEmail),
		})
		if err != nil {
			return nil, apperrors.ErrPaymentProvider.WithError(err)
		}
		customerID = cust.ID
	}

	priceID := params.PlanID
	if priceID == "" {
		priceID = p.priceID
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	subParams.AddExpand("latest_invoice.payment_intent")

	sub, err := p.api.Subscriptions.New(subParams)
	if err != nil {
		return nil, apperrors.ErrPaymentProvider.WithError(err)
	}

	result := &Result{
		SubscriptionID: sub.ID,
		CustomerID:     customerID,
		ExpiresAt:      time.Unix(sub.CurrentPeriodEnd, 0),
	}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		result.PaymentID = sub.LatestInvoice.PaymentIntent.ID
		result.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}
	return result, nil
}

func (p *StripeProvider) Cancel(ctx context.Context, providerSubscriptionID string) error {
	if _, err := p.api.Subscriptions.Cancel(providerSubscriptionID, nil); err != nil {
		return apperrors.ErrPaymentProvider.WithError(err)
	}
	return nil
}

// ParseWebhook verifies the Stripe-Signature header and normalizes the
// event. Event types outside the handled set return a nil event so the
// endpoint can acknowledge them without acting.
func (p *StripeProvider) ParseWebhook(payload []byte, signature string) (*ProviderEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return nil, apperrors.ErrInvalidWebhookSignature.WithError(err)
	}
	return normalizeStripeEvent(event)
}

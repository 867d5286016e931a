package payments

import (
	"encoding/json"
	"time"

	"github.com/stripe/stripe-go/v76"
)

// stripeInvoice and stripeSubscription pull out just the fields the
// normalizer reads from the event payload.
type stripeInvoice struct {
	Subscription string `json:"subscription"`
	Customer     string `json:"customer"`
	AmountPaid   int64  `json:"amount_paid"`
	AmountDue    int64  `json:"amount_due"`
	Currency     string `json:"currency"`
}

type stripeSubscription struct {
	ID               string `json:"id"`
	Customer         string `json:"customer"`
	Status           string `json:"status"`
	CurrentPeriodEnd int64  `json:"current_period_end"`
}

// normalizeStripeEvent maps Stripe event types onto the provider-neutral
// EventKind set. Unhandled types yield (nil, nil).
func normalizeStripeEvent(event stripe.Event) (*ProviderEvent, error) {
	switch event.Type {
	case "invoice.payment_succeeded", "invoice.paid":
		var inv stripeInvoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return nil, err
		}
		return &ProviderEvent{
			Kind:           EventPaymentSucceeded,
			SubscriptionID: inv.Subscription,
			CustomerID:     inv.Customer,
			AmountCentavos: inv.AmountPaid,
			Currency:       inv.Currency,
			Raw:            event.Data.Raw,
		}, nil

	case "invoice.payment_failed":
		var inv stripeInvoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return nil, err
		}
		return &ProviderEvent{
			Kind:           EventPaymentFailed,
			SubscriptionID: inv.Subscription,
			CustomerID:     inv.Customer,
			AmountCentavos: inv.AmountDue,
			Currency:       inv.Currency,
			Raw:            event.Data.Raw,
		}, nil

	case "customer.subscription.updated":
		var sub stripeSubscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, err
		}
		return &ProviderEvent{
			Kind:           EventSubscriptionUpdated,
			SubscriptionID: sub.ID,
			CustomerID:     sub.Customer,
			PeriodEnd:      time.Unix(sub.CurrentPeriodEnd, 0),
			Raw:            event.Data.Raw,
		}, nil

	case "customer.subscription.deleted":
		var sub stripeSubscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, err
		}
		return &ProviderEvent{
			Kind:           EventSubscriptionCanceled,
			SubscriptionID: sub.ID,
			CustomerID:     sub.Customer,
			PeriodEnd:      time.Unix(sub.CurrentPeriodEnd, 0),
			Raw:            event.Data.Raw,
		}, nil
	}

	return nil, nil
}

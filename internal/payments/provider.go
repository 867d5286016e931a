package payments

import (
	"context"
	"encoding/json"
	"time"

	"kasambahay_backend/pkg/apperrors"
)

// Capability names a payment operation a provider may support. Callers
// check capabilities instead of type-asserting adapters.
type Capability string

const (
	CapabilitySubscribe Capability = "subscribe"
	CapabilityCancel    Capability = "cancel"
	CapabilityWebhooks  Capability = "webhooks"
)

// SubscribeParams carries what an adapter needs to open a subscription.
type SubscribeParams struct {
	CustomerEmail string
	// CustomerID is the provider-side customer, empty on first subscribe.
	CustomerID string
	PlanID     string
}

// Result is the provider-agnostic outcome of a subscribe call. Exactly
// one of ClientSecret or RedirectURL is set for flows that need a
// client-side step.
type Result struct {
	SubscriptionID string
	CustomerID     string
	PaymentID      string
	ClientSecret   string
	RedirectURL    string
	ExpiresAt      time.Time
}

// EventKind is the normalized webhook event type.
type EventKind string

const (
	EventPaymentSucceeded     EventKind = "payment_succeeded"
	EventPaymentFailed        EventKind = "payment_failed"
	EventSubscriptionUpdated  EventKind = "subscription_updated"
	EventSubscriptionCanceled EventKind = "subscription_canceled"
)

// ProviderEvent is a verified, normalized webhook notification.
type ProviderEvent struct {
	Kind           EventKind
	SubscriptionID string
	CustomerID     string
	AmountCentavos int64
	Currency       string
	PeriodEnd      time.Time
	Raw            json.RawMessage
}

// Provider is a payment gateway adapter. Adapters for gateways that are
// not integrated yet still register here so the API can report them as
// coming soon instead of unknown.
type Provider interface {
	Name() string
	Supports(c Capability) bool
	Subscribe(ctx context.Context, params SubscribeParams) (*Result, error)
	Cancel(ctx context.Context, providerSubscriptionID string) error
	ParseWebhook(payload []byte, signature string) (*ProviderEvent, error)
}

// Registry holds the configured adapters keyed by name.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// Get returns the named adapter. Unknown names are a client error;
// known-but-unwired gateways surface their own not-implemented error
// from the adapter itself.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, apperrors.NewBadRequestError("unknown payment provider: " + name)
	}
	return p, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

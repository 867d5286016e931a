package payments

import (
	"context"

	"kasambahay_backend/pkg/apperrors"
)

// PayPalProvider is registered so the API can name PayPal as a known but
// not yet integrated gateway. Every operation reports not-implemented.
type PayPalProvider struct{}

func NewPayPalProvider() *PayPalProvider { return &PayPalProvider{} }

func (p *PayPalProvider) Name() string { return "paypal" }

func (p *PayPalProvider) Supports(c Capability) bool { return false }

func (p *PayPalProvider) Subscribe(ctx context.Context, params SubscribeParams) (*Result, error) {
	return nil, apperrors.ErrProviderNotImplemented
}

func (p *PayPalProvider) Cancel(ctx context.Context, providerSubscriptionID string) error {
	return apperrors.ErrProviderNotImplemented
}

func (p *PayPalProvider) ParseWebhook(payload []byte, signature string) (*ProviderEvent, error) {
	return nil, apperrors.ErrProviderNotImplemented
}

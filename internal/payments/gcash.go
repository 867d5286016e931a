package payments

import (
	"context"

	"kasambahay_backend/pkg/apperrors"
)

// GCashProvider is the placeholder adapter for GCash, the dominant
// local e-wallet. Integration is pending a merchant account.
type GCashProvider struct{}

func NewGCashProvider() *GCashProvider { return &GCashProvider{} }

func (p *GCashProvider) Name() string { return "gcash" }

func (p *GCashProvider) Supports(c Capability) bool { return false }

func (p *GCashProvider) Subscribe(ctx context.Context, params SubscribeParams) (*Result, error) {
	return nil, apperrors.ErrProviderNotImplemented
}

func (p *GCashProvider) Cancel(ctx context.Context, providerSubscriptionID string) error {
	return apperrors.ErrProviderNotImplemented
}

func (p *GCashProvider) ParseWebhook(payload []byte, signature string) (*ProviderEvent, error) {
	return nil, apperrors.ErrProviderNotImplemented
}

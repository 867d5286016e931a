package payments

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"kasambahay_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(NewPayPalProvider(), NewGCashProvider())

	p, err := registry.Get("paypal")
	require.NoError(t, err)
	assert.Equal(t, "paypal", p.Name())

	_, err = registry.Get("bitcoin")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)

	assert.ElementsMatch(t, []string{"paypal", "gcash"}, registry.Names())
}

func TestPlaceholderProviders(t *testing.T) {
	t.Parallel()

	for _, p := range []Provider{NewPayPalProvider(), NewGCashProvider()} {
		assert.False(t, p.Supports(CapabilitySubscribe), p.Name())
		assert.False(t, p.Supports(CapabilityWebhooks), p.Name())

		_, err := p.Subscribe(context.Background(), SubscribeParams{PlanID: "monthly"})
		assert.Equal(t, apperrors.ErrProviderNotImplemented, err, p.Name())

		err = p.Cancel(context.Background(), "sub-1")
		assert.Equal(t, apperrors.ErrProviderNotImplemented, err, p.Name())

		_, err = p.ParseWebhook(nil, "")
		assert.Equal(t, apperrors.ErrProviderNotImplemented, err, p.Name())
	}
}

func stripeEvent(eventType string, payload string) stripe.Event {
	return stripe.Event{
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: json.RawMessage(payload)},
	}
}

func TestNormalizeStripeEvent_PaymentSucceeded(t *testing.T) {
	t.Parallel()

	for _, eventType := range []string{"invoice.payment_succeeded", "invoice.paid"} {
		ev, err := normalizeStripeEvent(stripeEvent(eventType,
			`{"subscription":"sub_1","customer":"cus_1","amount_paid":59900,"currency":"php"}`))
		require.NoError(t, err, eventType)
		require.NotNil(t, ev, eventType)

		assert.Equal(t, EventPaymentSucceeded, ev.Kind)
		assert.Equal(t, "sub_1", ev.SubscriptionID)
		assert.Equal(t, "cus_1", ev.CustomerID)
		assert.Equal(t, int64(59900), ev.AmountCentavos)
		assert.Equal(t, "php", ev.Currency)
	}
}

func TestNormalizeStripeEvent_PaymentFailed(t *testing.T) {
	t.Parallel()

	ev, err := normalizeStripeEvent(stripeEvent("invoice.payment_failed",
		`{"subscription":"sub_1","customer":"cus_1","amount_due":59900,"currency":"php"}`))
	require.NoError(t, err)
	require.NotNil(t, ev)

	assert.Equal(t, EventPaymentFailed, ev.Kind)
	assert.Equal(t, int64(59900), ev.AmountCentavos, "failed invoices report the amount due")
}

func TestNormalizeStripeEvent_SubscriptionLifecycle(t *testing.T) {
	t.Parallel()

	periodEnd := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	payload := `{"id":"sub_1","customer":"cus_1","status":"active","current_period_end":1782864000}`

	ev, err := normalizeStripeEvent(stripeEvent("customer.subscription.updated", payload))
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, EventSubscriptionUpdated, ev.Kind)
	assert.Equal(t, periodEnd.Unix(), ev.PeriodEnd.Unix())

	ev, err = normalizeStripeEvent(stripeEvent("customer.subscription.deleted", payload))
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, EventSubscriptionCanceled, ev.Kind)
	assert.Equal(t, "sub_1", ev.SubscriptionID)
}

func TestNormalizeStripeEvent_UnhandledTypeIsAcked(t *testing.T) {
	t.Parallel()

	ev, err := normalizeStripeEvent(stripeEvent("charge.refunded", `{}`))
	assert.NoError(t, err)
	assert.Nil(t, ev, "unhandled types ack without producing an event")
}

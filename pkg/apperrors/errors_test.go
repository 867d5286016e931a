package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError_DoesNotMutateShared(t *testing.T) {
	t.Parallel()

	causeA := errors.New("request A failure")
	causeB := errors.New("request B failure")

	wrappedA := ErrPaymentProvider.WithError(causeA)
	wrappedB := ErrPaymentProvider.WithError(causeB)

	assert.Nil(t, ErrPaymentProvider.Err, "the shared error must stay untouched")
	require.NotSame(t, wrappedA, wrappedB)
	assert.Same(t, causeA, wrappedA.Err)
	assert.Same(t, causeB, wrappedB.Err)

	assert.Equal(t, ErrPaymentProvider.Code, wrappedA.Code)
	assert.Equal(t, ErrPaymentProvider.HTTPCode, wrappedA.HTTPCode)
}

func TestWithDetails_DoesNotMutateShared(t *testing.T) {
	t.Parallel()

	detailed := ErrInvalidWebhookSignature.WithDetails(map[string]string{"header": "missing"})

	assert.Nil(t, ErrInvalidWebhookSignature.Details)
	assert.NotNil(t, detailed.Details)
}

func TestWithError_Unwraps(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	assert.ErrorIs(t, ErrPaymentProvider.WithError(cause), cause)
}

package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteLookupErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := &RemoteLookupError{Kind: "address", Locator: "http://user/addresses/1", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "address")
	assert.Contains(t, err.Error(), "http://user/addresses/1")

	var lookupErr *RemoteLookupError
	wrapped := fmt.Errorf("placing order: %w", err)
	require.ErrorAs(t, wrapped, &lookupErr)
	assert.Equal(t, "address", lookupErr.Kind)
}

func TestPaymentUnauthorizedErrorMessage(t *testing.T) {
	err := &PaymentUnauthorizedError{Message: "insufficient funds"}
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestSentinelErrorsAreDistinguishable(t *testing.T) {
	sentinels := []error{
		ErrPaymentUnavailable,
		ErrShipmentBookingFailed,
		ErrOrderPersistenceFailed,
		ErrAmountOverflow,
		ErrOrderNotFound,
	}

	for i, sentinel := range sentinels {
		wrapped := fmt.Errorf("%w: boom", sentinel)
		assert.ErrorIs(t, wrapped, sentinel)
		for j, other := range sentinels {
			if i != j {
				assert.NotErrorIs(t, wrapped, other)
			}
		}
	}
}

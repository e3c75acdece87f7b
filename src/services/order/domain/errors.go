package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPaymentUnavailable means the payment service itself failed; the
	// charge was never decided.
	ErrPaymentUnavailable = errors.New("payment service unavailable")

	// ErrShipmentBookingFailed means payment was already authorized when the
	// booking failed, leaving an orphaned authorization.
	ErrShipmentBookingFailed = errors.New("shipment booking failed")

	// ErrOrderPersistenceFailed means payment and shipment both succeeded but
	// the order was never stored. Highest severity: real-world side effects
	// with no record.
	ErrOrderPersistenceFailed = errors.New("order persistence failed")

	// ErrAmountOverflow means the aggregated total is not representable.
	ErrAmountOverflow = errors.New("order amount overflow")

	// ErrOrderNotFound is returned by lookups of unknown order ids.
	ErrOrderNotFound = errors.New("order not found")
)

// RemoteLookupError reports a failed fetch of one of the order's inputs.
// Any lookup failure aborts the saga before side effects occur.
type RemoteLookupError struct {
	Kind    string // "customer", "address", "card" or "cart"
	Locator string
	Err     error
}

func (e *RemoteLookupError) Error() string {
	return fmt.Sprintf("remote %s lookup failed for %s: %v", e.Kind, e.Locator, e.Err)
}

func (e *RemoteLookupError) Unwrap() error {
	return e.Err
}

// PaymentUnauthorizedError is an explicit rejection by the payment service.
// Message carries the user-facing reason returned by the service.
type PaymentUnauthorizedError struct {
	Message string
}

func (e *PaymentUnauthorizedError) Error() string {
	return "payment unauthorized: " + e.Message
}

package domain

import (
	"context"
	"time"
)

// CustomerResponse carries the descriptive fields returned by the profile
// service. The customer id is derived from the locator, never trusted from
// the payload.
type CustomerResponse struct {
	FirstName string
	LastName  string
	Username  string
}

type AddressResponse struct {
	Number   string
	Street   string
	City     string
	Country  string
	Postcode string
}

type CardResponse struct {
	LongNum string
	CCV     string
	Expires string
}

type CartItem struct {
	ItemID    string
	Quantity  int
	UnitPrice float64
}

type AuthorizationResult struct {
	Authorised bool
	Message    string
}

type ShipmentRequest struct {
	OrderID   string
	ItemCount int
}

type ShipmentResponse struct {
	Carrier        string
	TrackingNumber string
	// DeliveryDate is the zero time when the carrier has not set one.
	DeliveryDate time.Time
}

// CustomerClient looks up customer profile resources by locator.
type CustomerClient interface {
	RetrieveCustomer(ctx context.Context, locator string) (CustomerResponse, error)
	RetrieveAddress(ctx context.Context, locator string) (AddressResponse, error)
	RetrieveCard(ctx context.Context, locator string) (CardResponse, error)
}

// CartClient reads and clears a customer's cart.
type CartClient interface {
	GetItemsByCustomerID(ctx context.Context, customerID string) ([]CartItem, error)
	DeleteCartByCustomerID(ctx context.Context, customerID string) error
}

// PaymentClient submits a charge for authorization.
type PaymentClient interface {
	AuthorizePayment(ctx context.Context, amount float64) (AuthorizationResult, error)
}

// ShipmentClient books a shipment for a placed order.
type ShipmentClient interface {
	PostShipping(ctx context.Context, req ShipmentRequest) (ShipmentResponse, error)
}

// OrderStore persists finalized orders. Insert must reject duplicate ids.
type OrderStore interface {
	Insert(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
}

// EventPublisher publishes domain events. Publishing is best-effort from the
// saga's point of view; callers decide whether a failure matters.
type EventPublisher interface {
	Publish(topic string, body []byte) error
}

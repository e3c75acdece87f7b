package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "Created"
	OrderStatusConfirmed OrderStatus = "Confirmed"
)

// PlaceholderCarrier marks a shipment that has not been booked yet.
const PlaceholderCarrier = "dummy"

type Order struct {
	ID        string
	Customer  Customer
	Address   Address
	Card      Card
	Items     []Item
	CreatedAt time.Time
	Status    OrderStatus
	Shipment  Shipment
}

// Customer is an immutable snapshot taken at order time. Later profile
// changes do not affect placed orders.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Username  string
}

type Address struct {
	Number   string
	Street   string
	City     string
	Country  string
	Postcode string
}

type Card struct {
	LongNum string
	CCV     string
	Expires string
}

type Item struct {
	ItemID    string
	OrderID   string
	Quantity  int
	UnitPrice float64
}

type Shipment struct {
	Carrier        string
	TrackingNumber string
	// DeliveryDate is the zero time until the booking completes.
	DeliveryDate time.Time
}

// NewOrderID returns a globally unique order identifier.
func NewOrderID() string {
	return uuid.NewString()
}

// PlaceholderShipment returns the shipment value an order carries between
// aggregation and the real booking, so Shipment is never empty.
func PlaceholderShipment() Shipment {
	return Shipment{
		Carrier:        PlaceholderCarrier,
		TrackingNumber: uuid.NewString(),
	}
}

// Total is the sum of quantity times unit price over all items.
func (o *Order) Total() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// ItemCount is the sum of quantities over all items.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// CheckedTotal computes the order total and rejects non-representable
// results instead of silently returning Inf or NaN.
func (o *Order) CheckedTotal() (float64, error) {
	total := o.Total()
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return 0, ErrAmountOverflow
	}
	return total, nil
}

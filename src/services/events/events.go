package events

import (
	"errors"
	"time"
)

const (
	// Event topics
	OrderPlaced = "order.placed"
	SagaAlert   = "order.saga.alert"

	// Saga stages reported in alerts
	StageShipment    = "shipment"
	StagePersistence = "persistence"
)

// OrderPlacedEvent is published after an order has been durably stored.
type OrderPlacedEvent struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Total      float64   `json:"total"`
	ItemCount  int       `json:"itemCount"`
	Carrier    string    `json:"carrier"`
	Version    int       `json:"version"`
	TimeStamp  time.Time `json:"timestamp"`
}

func (e *OrderPlacedEvent) Validate() error {
	if e.OrderID == "" || e.CustomerID == "" {
		return errors.New("missing required fields in OrderPlacedEvent")
	}
	if e.Total < 0 || e.ItemCount < 0 {
		return errors.New("negative total or item count in OrderPlacedEvent")
	}
	return nil
}

// SagaAlertEvent is published when the saga fails after payment has been
// authorized. These failures leave side effects (charged card, booked
// shipment) unreconciled with stored state, so operators must be paged
// rather than the caller told to retry.
type SagaAlertEvent struct {
	OrderID   string    `json:"orderId"`
	Stage     string    `json:"stage"`
	Reason    string    `json:"reason"`
	Version   int       `json:"version"`
	TimeStamp time.Time `json:"timestamp"`
}

func (e *SagaAlertEvent) Validate() error {
	if e.OrderID == "" || e.Stage == "" {
		return errors.New("missing required fields in SagaAlertEvent")
	}
	return nil
}

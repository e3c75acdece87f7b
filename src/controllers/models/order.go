package models

import (
	"strings"
	"time"

	"go-order-saga/src/services/order/domain"
)

// OrderRequest carries the locators of the resources the saga snapshots:
// the customer profile, shipping address, payment card and cart items.
type OrderRequest struct {
	Customer string `json:"customer"`
	Address  string `json:"address"`
	Card     string `json:"card"`
	Items    string `json:"items"`
}

type OrderResponse struct {
	ID        string           `json:"id"`
	Customer  CustomerResponse `json:"customer"`
	Address   AddressResponse  `json:"address"`
	Card      CardResponse     `json:"card"`
	Items     []ItemResponse   `json:"items"`
	CreatedAt time.Time        `json:"createdAt"`
	Status    string           `json:"status"`
	Shipment  ShipmentResponse `json:"shipment"`
	Total     float64          `json:"total"`
	ItemCount int              `json:"itemCount"`
}

type CustomerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

type AddressResponse struct {
	Number   string `json:"number"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Postcode string `json:"postcode"`
}

// CardResponse never echoes the full card number or the CCV.
type CardResponse struct {
	MaskedLongNum string `json:"longNum"`
	Expires       string `json:"expires"`
}

type ItemResponse struct {
	ItemID    string  `json:"itemId"`
	OrderID   string  `json:"orderId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type ShipmentResponse struct {
	Carrier        string     `json:"carrier"`
	TrackingNumber string     `json:"trackingNumber"`
	DeliveryDate   *time.Time `json:"deliveryDate,omitempty"`
}

func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, ItemResponse{
			ItemID:    item.ItemID,
			OrderID:   item.OrderID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	shipment := ShipmentResponse{
		Carrier:        order.Shipment.Carrier,
		TrackingNumber: order.Shipment.TrackingNumber,
	}
	if !order.Shipment.DeliveryDate.IsZero() {
		deliveryDate := order.Shipment.DeliveryDate
		shipment.DeliveryDate = &deliveryDate
	}

	return OrderResponse{
		ID: order.ID,
		Customer: CustomerResponse{
			ID:        order.Customer.ID,
			FirstName: order.Customer.FirstName,
			LastName:  order.Customer.LastName,
			Username:  order.Customer.Username,
		},
		Address: AddressResponse{
			Number:   order.Address.Number,
			Street:   order.Address.Street,
			City:     order.Address.City,
			Country:  order.Address.Country,
			Postcode: order.Address.Postcode,
		},
		Card: CardResponse{
			MaskedLongNum: maskCardNumber(order.Card.LongNum),
			Expires:       order.Card.Expires,
		},
		Items:     items,
		CreatedAt: order.CreatedAt,
		Status:    string(order.Status),
		Shipment:  shipment,
		Total:     order.Total(),
		ItemCount: order.ItemCount(),
	}
}

func maskCardNumber(longNum string) string {
	if len(longNum) <= 4 {
		return longNum
	}
	return strings.Repeat("*", len(longNum)-4) + longNum[len(longNum)-4:]
}

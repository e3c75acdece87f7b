package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-order-saga/src/services/order/domain"
)

const deliveryDateLayout = "2006-01-02"

type ShipmentHTTPClient struct {
	client  *http.Client
	baseURL string
}

func NewShipmentHTTPClient(baseURL string, timeout time.Duration) *ShipmentHTTPClient {
	return &ShipmentHTTPClient{
		client:  newHTTPClient(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type shipmentRequestPayload struct {
	OrderID   string `json:"orderId"`
	ItemCount int    `json:"itemCount"`
}

type shipmentResponsePayload struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	DeliveryDate   string `json:"deliveryDate"`
}

func (c *ShipmentHTTPClient) PostShipping(ctx context.Context, req domain.ShipmentRequest) (domain.ShipmentResponse, error) {
	var payload shipmentResponsePayload
	err := postJSON(ctx, c.client, c.baseURL+"/shipping", shipmentRequestPayload{
		OrderID:   req.OrderID,
		ItemCount: req.ItemCount,
	}, &payload)
	if err != nil {
		return domain.ShipmentResponse{}, err
	}

	res := domain.ShipmentResponse{
		Carrier:        payload.Carrier,
		TrackingNumber: payload.TrackingNumber,
	}
	if payload.DeliveryDate != "" {
		deliveryDate, err := time.Parse(deliveryDateLayout, payload.DeliveryDate)
		if err != nil {
			return domain.ShipmentResponse{}, fmt.Errorf("malformed delivery date %q: %w", payload.DeliveryDate, err)
		}
		res.DeliveryDate = deliveryDate
	}
	return res, nil
}

package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-order-saga/src/services/order/domain"
)

type CartHTTPClient struct {
	client  *http.Client
	baseURL string
}

func NewCartHTTPClient(baseURL string, timeout time.Duration) *CartHTTPClient {
	return &CartHTTPClient{
		client:  newHTTPClient(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type cartItemPayload struct {
	ItemID    string  `json:"itemId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func (c *CartHTTPClient) GetItemsByCustomerID(ctx context.Context, customerID string) ([]domain.CartItem, error) {
	var payload []cartItemPayload
	endpoint := fmt.Sprintf("%s/carts/%s/items", c.baseURL, url.PathEscape(customerID))
	if err := getJSON(ctx, c.client, endpoint, &payload); err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, 0, len(payload))
	for _, item := range payload {
		items = append(items, domain.CartItem{
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return items, nil
}

func (c *CartHTTPClient) DeleteCartByCustomerID(ctx context.Context, customerID string) error {
	endpoint := fmt.Sprintf("%s/carts/%s", c.baseURL, url.PathEscape(customerID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	return doJSON(c.client, req, nil)
}

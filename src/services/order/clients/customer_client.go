package clients

import (
	"context"
	"net/http"
	"time"

	"go-order-saga/src/services/order/domain"
)

// CustomerHTTPClient fetches customer profile resources. Each call takes a
// full locator URL rather than a base URL: the caller already holds
// hypermedia references to the customer, address and card resources.
type CustomerHTTPClient struct {
	client *http.Client
}

func NewCustomerHTTPClient(timeout time.Duration) *CustomerHTTPClient {
	return &CustomerHTTPClient{client: newHTTPClient(timeout)}
}

type customerPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

type addressPayload struct {
	Number   string `json:"number"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Postcode string `json:"postcode"`
}

type cardPayload struct {
	LongNum string `json:"longNum"`
	CCV     string `json:"ccv"`
	Expires string `json:"expires"`
}

func (c *CustomerHTTPClient) RetrieveCustomer(ctx context.Context, locator string) (domain.CustomerResponse, error) {
	var payload customerPayload
	if err := getJSON(ctx, c.client, locator, &payload); err != nil {
		return domain.CustomerResponse{}, err
	}
	return domain.CustomerResponse{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Username:  payload.Username,
	}, nil
}

func (c *CustomerHTTPClient) RetrieveAddress(ctx context.Context, locator string) (domain.AddressResponse, error) {
	var payload addressPayload
	if err := getJSON(ctx, c.client, locator, &payload); err != nil {
		return domain.AddressResponse{}, err
	}
	return domain.AddressResponse{
		Number:   payload.Number,
		Street:   payload.Street,
		City:     payload.City,
		Country:  payload.Country,
		Postcode: payload.Postcode,
	}, nil
}

func (c *CustomerHTTPClient) RetrieveCard(ctx context.Context, locator string) (domain.CardResponse, error) {
	var payload cardPayload
	if err := getJSON(ctx, c.client, locator, &payload); err != nil {
		return domain.CardResponse{}, err
	}
	return domain.CardResponse{
		LongNum: payload.LongNum,
		CCV:     payload.CCV,
		Expires: payload.Expires,
	}, nil
}

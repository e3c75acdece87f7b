package clients

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go-order-saga/src/services/order/domain"
)

type PaymentHTTPClient struct {
	client  *http.Client
	baseURL string
}

func NewPaymentHTTPClient(baseURL string, timeout time.Duration) *PaymentHTTPClient {
	return &PaymentHTTPClient{
		client:  newHTTPClient(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type authorizationRequest struct {
	Amount float64 `json:"amount"`
}

type authorizationResponse struct {
	Authorised bool   `json:"authorised"`
	Message    string `json:"message"`
}

// AuthorizePayment submits the order total for authorization. An error means
// the payment service could not decide; a response with Authorised false is
// an explicit rejection.
func (c *PaymentHTTPClient) AuthorizePayment(ctx context.Context, amount float64) (domain.AuthorizationResult, error) {
	var payload authorizationResponse
	err := postJSON(ctx, c.client, c.baseURL+"/paymentAuth", authorizationRequest{Amount: amount}, &payload)
	if err != nil {
		return domain.AuthorizationResult{}, err
	}
	return domain.AuthorizationResult{
		Authorised: payload.Authorised,
		Message:    payload.Message,
	}, nil
}

package persistence

import (
	"testing"
	"time"

	"go-order-saga/src/services/order/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID: "order-1",
		Customer: domain.Customer{
			ID:        "cus-1",
			FirstName: "Joe",
			LastName:  "Doe",
			Username:  "joedoe",
		},
		Address: domain.Address{
			Number:   "123",
			Street:   "High Street",
			City:     "Glasgow",
			Country:  "UK",
			Postcode: "G1 1AA",
		},
		Card: domain.Card{
			LongNum: "5544334455443344",
			CCV:     "123",
			Expires: "08/29",
		},
		Items: []domain.Item{
			{ItemID: "abc", OrderID: "order-1", Quantity: 2, UnitPrice: 10.00},
		},
		CreatedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Status:    domain.OrderStatusCreated,
		Shipment: domain.Shipment{
			Carrier:        "fedex",
			TrackingNumber: "T123",
			DeliveryDate:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestToDocumentRedactsCard(t *testing.T) {
	doc := toDocument(sampleOrder())

	assert.Equal(t, "************3344", doc.Card.MaskedLongNum)
	assert.Equal(t, "08/29", doc.Card.Expires)
	// The document type has no CCV field at all; this assertion pins the
	// order fields that do get stored.
	assert.Equal(t, "order-1", doc.ID)
	assert.Equal(t, "Created", doc.Status)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, ItemDocument{ItemID: "abc", OrderID: "order-1", Quantity: 2, UnitPrice: 10.00}, doc.Items[0])
}

func TestDocumentRoundTrip(t *testing.T) {
	order := sampleOrder()
	restored := fromDocument(toDocument(order))

	assert.Equal(t, order.ID, restored.ID)
	assert.Equal(t, order.Customer, restored.Customer)
	assert.Equal(t, order.Address, restored.Address)
	assert.Equal(t, order.Items, restored.Items)
	assert.Equal(t, order.Status, restored.Status)
	assert.Equal(t, order.Shipment, restored.Shipment)
	assert.Equal(t, order.CreatedAt, restored.CreatedAt)

	// Redaction is one-way: the restored card is masked and has no CCV.
	assert.Equal(t, "************3344", restored.Card.LongNum)
	assert.Empty(t, restored.Card.CCV)
}

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5544334455443344", "************3344"},
		{"12345", "*2345"},
		{"1234", "1234"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, maskCardNumber(tt.in))
	}
}

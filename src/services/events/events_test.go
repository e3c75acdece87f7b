package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderPlacedEventValidate(t *testing.T) {
	valid := OrderPlacedEvent{
		OrderID:    "order-1",
		CustomerID: "cus-1",
		Total:      20.00,
		ItemCount:  2,
		Carrier:    "fedex",
		Version:    1,
		TimeStamp:  time.Now(),
	}
	assert.NoError(t, valid.Validate())

	missingOrder := valid
	missingOrder.OrderID = ""
	assert.Error(t, missingOrder.Validate())

	negativeTotal := valid
	negativeTotal.Total = -1
	assert.Error(t, negativeTotal.Validate())
}

func TestSagaAlertEventValidate(t *testing.T) {
	valid := SagaAlertEvent{
		OrderID:   "order-1",
		Stage:     StagePersistence,
		Reason:    "write concern failure",
		Version:   1,
		TimeStamp: time.Now(),
	}
	assert.NoError(t, valid.Validate())

	missingStage := valid
	missingStage.Stage = ""
	assert.Error(t, missingStage.Validate())
}

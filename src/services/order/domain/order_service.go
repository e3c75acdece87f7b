package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go-order-saga/src/infrastructure/log"
	"go-order-saga/src/services/events"

	"golang.org/x/sync/errgroup"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, customerLocator, addressLocator, cardLocator, itemsLocator string) (*Order, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
}

type orderService struct {
	logger    log.Logger
	customers CustomerClient
	carts     CartClient
	payments  PaymentClient
	shipments ShipmentClient
	store     OrderStore
	publisher EventPublisher
	now       func() time.Time
}

func NewOrderService(
	logger log.Logger,
	customers CustomerClient,
	carts CartClient,
	payments PaymentClient,
	shipments ShipmentClient,
	store OrderStore,
	publisher EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger,
		customers: customers,
		carts:     carts,
		payments:  payments,
		shipments: shipments,
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

// PlaceOrder drives the order saga: fetch the customer, address, card and
// cart snapshot concurrently, authorize payment for the aggregated total,
// book a shipment, persist the order and clear the cart. Authorization is a
// hard gate: no shipment is booked and nothing is persisted unless the
// payment service accepts the charge. Every failure before persistence
// aborts with a typed error; only cart cleanup is best-effort.
func (s *orderService) PlaceOrder(ctx context.Context, customerLocator, addressLocator, cardLocator, itemsLocator string) (*Order, error) {
	orderID := NewOrderID()
	customerID := customerIDFromLocators(itemsLocator, customerLocator)

	var (
		customer Customer
		address  Address
		card     Card
		items    []Item
	)

	// The four lookups have no data dependency on each other. errgroup
	// cancels the remaining fetches as soon as one fails.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customer, err = s.fetchCustomer(gctx, customerLocator)
		return err
	})
	g.Go(func() error {
		var err error
		address, err = s.fetchAddress(gctx, addressLocator)
		return err
	})
	g.Go(func() error {
		var err error
		card, err = s.fetchCard(gctx, cardLocator)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.fetchCartItems(gctx, customerID, orderID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	order := &Order{
		ID:        orderID,
		Customer:  customer,
		Address:   address,
		Card:      card,
		Items:     items,
		CreatedAt: s.now(),
		Status:    OrderStatusCreated,
		Shipment:  PlaceholderShipment(),
	}

	// An empty cart authorizes an amount of 0 rather than short-circuiting;
	// the payment service owns that policy.
	total, err := order.CheckedTotal()
	if err != nil {
		return nil, err
	}

	auth, err := s.payments.AuthorizePayment(ctx, total)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}
	if !auth.Authorised {
		return nil, &PaymentUnauthorizedError{Message: auth.Message}
	}

	shipment, err := s.shipments.PostShipping(ctx, ShipmentRequest{
		OrderID:   orderID,
		ItemCount: order.ItemCount(),
	})
	if err != nil {
		// Payment is already authorized and is not reversed here; the
		// authorization is orphaned until an operator reconciles it.
		s.alert(ctx, orderID, events.StageShipment, err)
		return nil, fmt.Errorf("%w: %v", ErrShipmentBookingFailed, err)
	}

	order.Shipment = Shipment{
		Carrier:        shipment.Carrier,
		TrackingNumber: shipment.TrackingNumber,
		DeliveryDate:   shipment.DeliveryDate,
	}

	if err := s.store.Insert(ctx, order); err != nil {
		// TODO cancel shipment request
		s.alert(ctx, orderID, events.StagePersistence, err)
		return nil, fmt.Errorf("%w: %v", ErrOrderPersistenceFailed, err)
	}

	// The order is placed; a failed cart deletion must not fail the call.
	if err := s.carts.DeleteCartByCustomerID(ctx, customerID); err != nil {
		s.logger.WarnWithExtra(ctx, "cart cleanup failed after order placement", map[string]any{
			"OrderID":    orderID,
			"CustomerID": customerID,
			"Error":      err.Error(),
		})
	}

	s.publishPlaced(ctx, order, customerID)

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.store.FindByID(ctx, id)
}

func (s *orderService) fetchCustomer(ctx context.Context, locator string) (Customer, error) {
	res, err := s.customers.RetrieveCustomer(ctx, locator)
	if err != nil {
		return Customer{}, &RemoteLookupError{Kind: "customer", Locator: locator, Err: err}
	}
	// The id comes from the locator, not from the payload; the profile
	// service only supplies descriptive fields.
	return Customer{
		ID:        lastPathSegment(locator),
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Username:  res.Username,
	}, nil
}

func (s *orderService) fetchAddress(ctx context.Context, locator string) (Address, error) {
	res, err := s.customers.RetrieveAddress(ctx, locator)
	if err != nil {
		return Address{}, &RemoteLookupError{Kind: "address", Locator: locator, Err: err}
	}
	return Address{
		Number:   res.Number,
		Street:   res.Street,
		City:     res.City,
		Country:  res.Country,
		Postcode: res.Postcode,
	}, nil
}

func (s *orderService) fetchCard(ctx context.Context, locator string) (Card, error) {
	res, err := s.customers.RetrieveCard(ctx, locator)
	if err != nil {
		return Card{}, &RemoteLookupError{Kind: "card", Locator: locator, Err: err}
	}
	return Card{
		LongNum: res.LongNum,
		CCV:     res.CCV,
		Expires: res.Expires,
	}, nil
}

// fetchCartItems snapshots the customer's cart and stamps every line with
// the order id; the cart service does not know about orders.
func (s *orderService) fetchCartItems(ctx context.Context, customerID, orderID string) ([]Item, error) {
	cartItems, err := s.carts.GetItemsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, &RemoteLookupError{Kind: "cart", Locator: customerID, Err: err}
	}

	items := make([]Item, 0, len(cartItems))
	for _, ci := range cartItems {
		if ci.Quantity <= 0 || ci.UnitPrice < 0 {
			return nil, &RemoteLookupError{
				Kind:    "cart",
				Locator: customerID,
				Err:     fmt.Errorf("malformed cart line %q: quantity %d, unit price %v", ci.ItemID, ci.Quantity, ci.UnitPrice),
			}
		}
		items = append(items, Item{
			ItemID:    ci.ItemID,
			OrderID:   orderID,
			Quantity:  ci.Quantity,
			UnitPrice: ci.UnitPrice,
		})
	}
	return items, nil
}

func (s *orderService) publishPlaced(ctx context.Context, order *Order, customerID string) {
	event := events.OrderPlacedEvent{
		OrderID:    order.ID,
		CustomerID: customerID,
		Total:      order.Total(),
		ItemCount:  order.ItemCount(),
		Carrier:    order.Shipment.Carrier,
		Version:    1,
		TimeStamp:  s.now(),
	}
	if err := event.Validate(); err != nil {
		s.logger.Exception(ctx, "order placed event validation failed", err)
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		s.logger.Exception(ctx, "failed to marshal order placed event", err)
		return
	}
	if err := s.publisher.Publish(events.OrderPlaced, body); err != nil {
		s.logger.Exception(ctx, "failed to publish order placed event for order "+order.ID, err)
	}
}

// alert reports a saga failure that happened after payment authorization.
// The caller still receives the typed error; this path exists so operators
// hear about side effects left unreconciled with stored state.
func (s *orderService) alert(ctx context.Context, orderID, stage string, cause error) {
	s.logger.Exception(ctx, fmt.Sprintf("order saga failed at %s stage for order %s", stage, orderID), cause)

	event := events.SagaAlertEvent{
		OrderID:   orderID,
		Stage:     stage,
		Reason:    cause.Error(),
		Version:   1,
		TimeStamp: s.now(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		s.logger.Exception(ctx, "failed to marshal saga alert event", err)
		return
	}
	if err := s.publisher.Publish(events.SagaAlert, body); err != nil {
		s.logger.Exception(ctx, "failed to publish saga alert for order "+orderID, err)
	}
}

// customerIDFromLocators derives the cart owner's id. The items locator
// follows the /carts/{id}/items convention; the segment after "carts" is
// taken instead of fixed offsets so trailing slashes or a scheme prefix do
// not shift the id. When the items locator has no carts segment, the last
// segment of the customer locator is used.
func customerIDFromLocators(itemsLocator, customerLocator string) string {
	if parsed, err := url.Parse(itemsLocator); err == nil {
		segments := splitPath(parsed.Path)
		for i, segment := range segments {
			if segment == "carts" && i+1 < len(segments) {
				return segments[i+1]
			}
		}
	}
	return lastPathSegment(customerLocator)
}

func lastPathSegment(locator string) string {
	path := locator
	if parsed, err := url.Parse(locator); err == nil {
		path = parsed.Path
	}
	segments := splitPath(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

func splitPath(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

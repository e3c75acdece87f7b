package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-order-saga/src/config"
	"go-order-saga/src/services/order/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	collection *mongo.Collection
}

// OrderDocument is the storage model for MongoDB.
type OrderDocument struct {
	ID        string           `bson:"id"`
	Customer  CustomerDocument `bson:"customer"`
	Address   AddressDocument  `bson:"address"`
	Card      CardDocument     `bson:"card"`
	Items     []ItemDocument   `bson:"items"`
	CreatedAt time.Time        `bson:"created_at"`
	Status    string           `bson:"status"`
	Shipment  ShipmentDocument `bson:"shipment"`
}

type CustomerDocument struct {
	ID        string `bson:"id"`
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
	Username  string `bson:"username"`
}

type AddressDocument struct {
	Number   string `bson:"number"`
	Street   string `bson:"street"`
	City     string `bson:"city"`
	Country  string `bson:"country"`
	Postcode string `bson:"postcode"`
}

// CardDocument stores only a masked card number. The CCV is never written.
type CardDocument struct {
	MaskedLongNum string `bson:"masked_long_num"`
	Expires       string `bson:"expires"`
}

type ItemDocument struct {
	ItemID    string  `bson:"item_id"`
	OrderID   string  `bson:"order_id"`
	Quantity  int     `bson:"quantity"`
	UnitPrice float64 `bson:"unit_price"`
}

type ShipmentDocument struct {
	Carrier        string    `bson:"carrier"`
	TrackingNumber string    `bson:"tracking_number"`
	DeliveryDate   time.Time `bson:"delivery_date"`
}

func NewOrderRepository(cfg *config.Config, client *mongo.Client) (*OrderRepository, error) {
	collection := client.Database(cfg.MongoDBDatabaseName).Collection("orders")

	// The unique index backs Insert's duplicate-id rejection.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order id index: %w", err)
	}

	return &OrderRepository{collection: collection}, nil
}

// Insert stores the order as a single document write. A second insert with
// the same id is rejected by the unique index.
func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	doc := toDocument(order)
	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("order %s already exists: %w", order.ID, err)
		}
		return err
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var doc OrderDocument
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return fromDocument(&doc), nil
}

func toDocument(order *domain.Order) *OrderDocument {
	items := make([]ItemDocument, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, ItemDocument{
			ItemID:    item.ItemID,
			OrderID:   item.OrderID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &OrderDocument{
		ID: order.ID,
		Customer: CustomerDocument{
			ID:        order.Customer.ID,
			FirstName: order.Customer.FirstName,
			LastName:  order.Customer.LastName,
			Username:  order.Customer.Username,
		},
		Address: AddressDocument{
			Number:   order.Address.Number,
			Street:   order.Address.Street,
			City:     order.Address.City,
			Country:  order.Address.Country,
			Postcode: order.Address.Postcode,
		},
		Card: CardDocument{
			MaskedLongNum: maskCardNumber(order.Card.LongNum),
			Expires:       order.Card.Expires,
		},
		Items:     items,
		CreatedAt: order.CreatedAt,
		Status:    string(order.Status),
		Shipment: ShipmentDocument{
			Carrier:        order.Shipment.Carrier,
			TrackingNumber: order.Shipment.TrackingNumber,
			DeliveryDate:   order.Shipment.DeliveryDate,
		},
	}
}

func fromDocument(doc *OrderDocument) *domain.Order {
	items := make([]domain.Item, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, domain.Item{
			ItemID:    item.ItemID,
			OrderID:   item.OrderID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &domain.Order{
		ID: doc.ID,
		Customer: domain.Customer{
			ID:        doc.Customer.ID,
			FirstName: doc.Customer.FirstName,
			LastName:  doc.Customer.LastName,
			Username:  doc.Customer.Username,
		},
		Address: domain.Address{
			Number:   doc.Address.Number,
			Street:   doc.Address.Street,
			City:     doc.Address.City,
			Country:  doc.Address.Country,
			Postcode: doc.Address.Postcode,
		},
		Card: domain.Card{
			LongNum: doc.Card.MaskedLongNum,
			Expires: doc.Card.Expires,
		},
		Items:     items,
		CreatedAt: doc.CreatedAt,
		Status:    domain.OrderStatus(doc.Status),
		Shipment: domain.Shipment{
			Carrier:        doc.Shipment.Carrier,
			TrackingNumber: doc.Shipment.TrackingNumber,
			DeliveryDate:   doc.Shipment.DeliveryDate,
		},
	}
}

// maskCardNumber keeps the last four digits and blanks the rest.
func maskCardNumber(longNum string) string {
	if len(longNum) <= 4 {
		return longNum
	}
	return strings.Repeat("*", len(longNum)-4) + longNum[len(longNum)-4:]
}

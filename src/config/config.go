package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoDBConnectionString string
	MongoDBDatabaseName     string
	RabbitMQHostName        string
	RabbitMQExchange        string
	CartServiceURL          string
	PaymentServiceURL       string
	ShipmentServiceURL      string
	RemoteCallTimeout       time.Duration
	HTTPPort                string
}

func LoadConfig() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables only")
	}

	config := &Config{
		MongoDBConnectionString: os.Getenv("MONGODB_CONNECTION_STRING"),
		MongoDBDatabaseName:     os.Getenv("MONGODB_DATABASE_NAME"),
		RabbitMQHostName:        os.Getenv("RABBITMQ_HOSTNAME"),
		RabbitMQExchange:        os.Getenv("RABBITMQ_EXCHANGE"),
		CartServiceURL:          os.Getenv("CART_SERVICE_URL"),
		PaymentServiceURL:       os.Getenv("PAYMENT_SERVICE_URL"),
		ShipmentServiceURL:      os.Getenv("SHIPMENT_SERVICE_URL"),
		HTTPPort:                os.Getenv("HTTP_PORT"),
	}

	// Set default values if environment variables are not set
	if config.MongoDBDatabaseName == "" {
		config.MongoDBDatabaseName = "order-db"
	}
	if config.RabbitMQExchange == "" {
		config.RabbitMQExchange = "order_events"
	}
	if config.CartServiceURL == "" {
		config.CartServiceURL = "http://carts"
	}
	if config.PaymentServiceURL == "" {
		config.PaymentServiceURL = "http://payment"
	}
	if config.ShipmentServiceURL == "" {
		config.ShipmentServiceURL = "http://shipping"
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}

	config.RemoteCallTimeout = 10 * time.Second
	if raw := os.Getenv("REMOTE_CALL_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			config.RemoteCallTimeout = time.Duration(seconds) * time.Second
		}
	}

	return config, nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-order-saga/src/config"
	"go-order-saga/src/controllers"
	"go-order-saga/src/infrastructure/log"
	"go-order-saga/src/infrastructure/mongo"
	"go-order-saga/src/infrastructure/rabbitmq"
	"go-order-saga/src/services/events"
	"go-order-saga/src/services/order/clients"
	"go-order-saga/src/services/order/domain"
	"go-order-saga/src/services/order/domain/persistence"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.NewLogger()

	configs, err := config.LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "Failed to load configuration", err)
	}
	logger.Info(ctx, "Configuration loaded successfully")

	client, err := mongo.GetMongoClient(configs)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal(ctx, "MongoDB ping failed", err)
	}
	logger.Info(ctx, "MongoDB connection successful")

	orderRepository, err := persistence.NewOrderRepository(configs, client)
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize order repository", err)
	}

	rabbitmqService, err := rabbitmq.NewRabbitMQService(
		configs.RabbitMQHostName,
		configs.RabbitMQExchange,
		[]string{events.OrderPlaced, events.SagaAlert},
	)
	if err != nil {
		logger.Fatal(ctx, "Failed to create RabbitMQ service", err)
	}
	defer rabbitmqService.Close()

	if !rabbitmqService.IsHealthy() {
		logger.Fatal(ctx, "RabbitMQ connection is not healthy", nil)
	}
	logger.Info(ctx, "RabbitMQ connection successful")

	customerClient := clients.NewCustomerHTTPClient(configs.RemoteCallTimeout)
	cartClient := clients.NewCartHTTPClient(configs.CartServiceURL, configs.RemoteCallTimeout)
	paymentClient := clients.NewPaymentHTTPClient(configs.PaymentServiceURL, configs.RemoteCallTimeout)
	shipmentClient := clients.NewShipmentHTTPClient(configs.ShipmentServiceURL, configs.RemoteCallTimeout)

	orderService := domain.NewOrderService(
		logger,
		customerClient,
		cartClient,
		paymentClient,
		shipmentClient,
		orderRepository,
		rabbitmqService,
	)

	orderController := controllers.NewOrderController(orderService)

	app := fiber.New(fiber.Config{
		ServerHeader: "Order-Saga-Service",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logger.Exception(c.Context(), "HTTP request error", err)
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(_ string) bool { return true },
	}))
	app.Use(recover.New())

	app.Get("/api/healthCheck", func(c *fiber.Ctx) error {
		if err := client.Ping(c.Context(), nil); err != nil {
			logger.Exception(c.Context(), "Health check: MongoDB ping failed", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  "database connection failed",
			})
		}

		if !rabbitmqService.IsHealthy() {
			logger.Warn(c.Context(), "Health check: RabbitMQ connection is unhealthy")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  "message queue connection failed",
			})
		}

		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	})

	orderController.Route(app)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	serverShutdown := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Starting server on port "+configs.HTTPPort)
		if err := app.Listen(":" + configs.HTTPPort); err != nil {
			serverShutdown <- err
		}
	}()

	select {
	case <-c:
		logger.Info(ctx, "Shutdown signal received, shutting down gracefully...")
	case err := <-serverShutdown:
		logger.Exception(ctx, "Server error occurred", err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Exception(ctx, "Server shutdown error", err)
	}

	logger.Info(ctx, "Server shutdown complete")
}

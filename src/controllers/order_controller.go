package controllers

import (
	"errors"

	"go-order-saga/src/controllers/models"
	"go-order-saga/src/services/order/domain"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	domain.OrderService
}

func NewOrderController(orderService domain.OrderService) *OrderController {
	return &OrderController{
		OrderService: orderService,
	}
}

func (c *OrderController) Route(app *fiber.App) {
	api := app.Group("/api/v1/orders")
	api.Post("/", c.PlaceOrder)
	api.Get("/:id", c.GetOrder)
}

// PlaceOrder godoc
// @Summary      Place a new order
// @Description  Runs the order saga for the given customer, address, card and cart locators
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body  models.OrderRequest  true  "Resource locators"
// @Success      201  {object}  models.OrderResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      406  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/v1/orders [post]
func (c *OrderController) PlaceOrder(ctx *fiber.Ctx) error {
	var req models.OrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Customer == "" || req.Address == "" || req.Card == "" || req.Items == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "customer, address, card and items locators are required"})
	}

	order, err := c.OrderService.PlaceOrder(ctx.Context(), req.Customer, req.Address, req.Card, req.Items)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(models.NewOrderResponse(order))
}

// GetOrder godoc
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  models.OrderResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/v1/orders/{id} [get]
func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	order, err := c.OrderService.GetOrder(ctx.Context(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(models.NewOrderResponse(order))
}

// statusForError maps the saga's error taxonomy onto HTTP statuses. Payment
// rejection and lookup failures are the caller's problem to present;
// shipment and persistence failures are internal errors that page operators.
func statusForError(err error) int {
	var lookupErr *domain.RemoteLookupError
	var unauthorizedErr *domain.PaymentUnauthorizedError

	switch {
	case errors.As(err, &unauthorizedErr):
		return fiber.StatusNotAcceptable
	case errors.As(err, &lookupErr):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrPaymentUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrAmountOverflow):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrShipmentBookingFailed),
		errors.Is(err, domain.ErrOrderPersistenceFailed):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

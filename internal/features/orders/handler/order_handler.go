package handler

import (
	"errors"
	"net/http"

	"uniform-storefront/internal/core/backend"
	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/core/session"
	"uniform-storefront/internal/features/orders/ports"
	"uniform-storefront/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for order history.
type OrderHandler struct {
	service ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(s ports.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// MyOrders handles GET /orders/my-orders.
// @Summary List the customer's orders
// @Description Requires an authenticated customer session.
// @Tags Orders
// @Produce json
// @Success 200 {array} domain.Order
// @Failure 401 {object} ErrorResponse
// @Router /orders/my-orders [get]
func (h *OrderHandler) MyOrders(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	orders, err := h.service.MyOrders(c.Context(), session.FromCtx(c))
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Message: "Debes iniciar sesión para ver tus órdenes",
				RayID:   rayID,
			})
		}
		return h.fail(c, rayID, "Failed to list customer orders", err)
	}
	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder handles GET /orders/:id.
// @Summary Get order by ID
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order ID is required",
			RayID:   rayID,
		})
	}

	order, err := h.service.OrderByID(c.Context(), orderID)
	if err != nil {
		return h.fail(c, rayID, "Failed to fetch order", err)
	}
	return c.Status(http.StatusOK).JSON(order)
}

func (h *OrderHandler) fail(c *fiber.Ctx, rayID, logMsg string, err error) error {
	logger.Get().Error(logMsg,
		zap.String("ray_id", rayID),
		zap.Error(err),
	)

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(ErrorResponse{
			Message: apiErr.Message,
			RayID:   rayID,
		})
	}
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Internal Server Error",
		RayID:   rayID,
	})
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

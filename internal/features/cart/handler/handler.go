package handler

import (
	"errors"
	"net/http"

	"uniform-storefront/internal/core/backend"
	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/core/session"
	"uniform-storefront/internal/features/cart/domain"
	"uniform-storefront/internal/features/cart/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	service ports.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// CartResponse is the cart plus its derived aggregates.
type CartResponse struct {
	Items     []domain.Line `json:"items"`
	Total     int64         `json:"total"`
	ItemCount int           `json:"itemCount"`
}

// AddItemRequest is the body for adding a product to the cart.
type AddItemRequest struct {
	ProductID      string `json:"productId"`
	Quantity       int    `json:"quantity"`
	IsEmbroidered  bool   `json:"isEmbroidered"`
	EmbroideryName string `json:"embroideryName"`
	// Notify defaults to true; pass false to mutate silently.
	Notify *bool `json:"notify"`
}

// UpdateQuantityRequest is the body for setting a line quantity.
type UpdateQuantityRequest struct {
	Quantity int   `json:"quantity"`
	Notify   *bool `json:"notify"`
}

// Get handles GET /cart.
// @Summary Get the session cart
// @Tags Cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	cart, err := h.service.Get(c.Context(), session.FromCtx(c))
	if err != nil {
		return cartError(c, "Failed to load cart", err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(cart))
}

// AddItem handles POST /cart/items.
// @Summary Add a product to the cart
// @Description Merges the quantity into the line matching product and embroidery identity. Stock violations leave the cart unchanged and queue a warning toast.
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Item to add"
// @Success 200 {object} CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.ProductID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "productId is required",
		})
	}

	cart, err := h.service.Add(c.Context(), session.FromCtx(c), req.ProductID, req.Quantity,
		req.IsEmbroidered, req.EmbroideryName, notifyFlag(req.Notify))
	if err != nil {
		return cartError(c, "Failed to add cart item", err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(cart))
}

// UpdateItem handles PUT /cart/items/:productId.
// @Summary Update a line quantity
// @Description Quantities of zero or below remove the product from the cart.
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param body body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} CartResponse
// @Router /cart/items/{productId} [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Quantity updates are silent by default, matching the store UI.
	notify := false
	if req.Notify != nil {
		notify = *req.Notify
	}

	cart, err := h.service.UpdateQuantity(c.Context(), session.FromCtx(c), c.Params("productId"), req.Quantity, notify)
	if err != nil {
		return cartError(c, "Failed to update cart item", err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(cart))
}

// RemoveItem handles DELETE /cart/items/:productId.
// @Summary Remove a product from the cart
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} CartResponse
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	cart, err := h.service.Remove(c.Context(), session.FromCtx(c), c.Params("productId"), notifyQuery(c))
	if err != nil {
		return cartError(c, "Failed to remove cart item", err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(cart))
}

// Clear handles DELETE /cart.
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Context(), session.FromCtx(c), notifyQuery(c)); err != nil {
		return cartError(c, "Failed to clear cart", err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(&domain.Cart{}))
}

func toResponse(cart *domain.Cart) CartResponse {
	items := cart.Lines
	if items == nil {
		items = []domain.Line{}
	}
	return CartResponse{
		Items:     items,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

func notifyFlag(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

func notifyQuery(c *fiber.Ctx) bool {
	return c.Query("notify", "true") != "false"
}

func cartError(c *fiber.Ctx, logMsg string, err error) error {
	logger.Get().Error(logMsg, zap.Error(err))

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{"message": apiErr.Message})
	}
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

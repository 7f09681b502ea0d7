package handler

import (
	"errors"
	"net/http"
	"net/url"

	"uniform-storefront/internal/core/backend"
	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/core/session"
	"uniform-storefront/internal/features/checkout/domain"
	"uniform-storefront/internal/features/checkout/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	service ports.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(s ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: s}
}

// SubmitResponse carries the payment handoff the browser must follow.
type SubmitResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
}

// ConfirmResponse is the callback outcome shown on the confirmation page.
type ConfirmResponse struct {
	Status string      `json:"status"`
	Order  interface{} `json:"order,omitempty"`
}

// SimulateRequest drives the simulated payment surface.
type SimulateRequest struct {
	Token  string `json:"token"`
	Action string `json:"action"`
}

// Prefill handles GET /checkout.
// @Summary Checkout page state
// @Description Shipping options, cart aggregates and the form pre-populated for an authenticated customer.
// @Tags Checkout
// @Produce json
// @Success 200 {object} ports.Prefill
// @Router /checkout [get]
func (h *CheckoutHandler) Prefill(c *fiber.Ctx) error {
	prefill, err := h.service.Prefill(c.Context(), session.FromCtx(c))
	if err != nil {
		return h.fail(c, "Failed to assemble checkout state", err)
	}
	return c.Status(http.StatusOK).JSON(prefill)
}

// Submit handles POST /checkout.
// @Summary Submit the checkout form
// @Description Creates the order and initiates the payment. Responds with the external payment URL to redirect to.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param form body ports.CheckoutForm true "Checkout form"
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	var form ports.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	handoff, err := h.service.Submit(c.Context(), session.FromCtx(c), form)
	if err != nil {
		if isValidationError(err) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}
		return h.fail(c, "Checkout submit failed", err)
	}
	return c.Status(http.StatusOK).JSON(SubmitResponse{
		Token:       handoff.Token,
		RedirectURL: handoff.URL,
	})
}

// Confirm handles GET /checkout/confirm.
// @Summary Payment confirmation callback
// @Description Resolves the token the external payer redirected back with. A missing or rejected token fails without a backend call.
// @Tags Checkout
// @Produce json
// @Param token query string false "Payment token"
// @Success 200 {object} ConfirmResponse
// @Failure 402 {object} ErrorResponse
// @Router /checkout/confirm [get]
func (h *CheckoutHandler) Confirm(c *fiber.Ctx) error {
	token := c.Query("token")

	order, err := h.service.Confirm(c.Context(), session.FromCtx(c), token)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentRejected) {
			return c.Status(http.StatusPaymentRequired).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}
		return h.fail(c, "Payment confirmation failed", err)
	}
	return c.Status(http.StatusOK).JSON(ConfirmResponse{
		Status: domain.StateSucceeded.String(),
		Order:  order,
	})
}

// Simulate handles GET /checkout/simulate.
// @Summary Simulated payment page state
// @Description Stand-in for the external payer outside production: echoes the pending token with the approve and reject actions.
// @Tags Checkout
// @Produce json
// @Param token query string true "Payment token"
// @Success 200 {object} map[string]string
// @Router /checkout/simulate [get]
func (h *CheckoutHandler) Simulate(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "token is required",
			RayID:   rayID(c),
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"token":     token,
		"actionUrl": "/checkout/simulate",
		"actions":   "approve|reject",
	})
}

// ResolveSimulation handles POST /checkout/simulate.
// @Summary Resolve a simulated payment
// @Description Funnels back into the confirmation callback: approve forwards the real token, reject forwards the rejection sentinel.
// @Tags Checkout
// @Accept json
// @Param request body SimulateRequest true "Simulation outcome"
// @Success 302
// @Failure 400 {object} ErrorResponse
// @Router /checkout/simulate [post]
func (h *CheckoutHandler) ResolveSimulation(c *fiber.Ctx) error {
	var req SimulateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	token := req.Token
	switch req.Action {
	case "approve":
		if token == "" {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "token is required",
				RayID:   rayID(c),
			})
		}
	case "reject":
		token = domain.TokenRejected
	default:
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "action must be approve or reject",
			RayID:   rayID(c),
		})
	}

	return c.Redirect("/checkout/confirm?token="+url.QueryEscape(token), http.StatusFound)
}

func (h *CheckoutHandler) fail(c *fiber.Ctx, logMsg string, err error) error {
	id := rayID(c)
	logger.Get().Error(logMsg,
		zap.String("ray_id", id),
		zap.Error(err),
	)

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(ErrorResponse{
			Message: apiErr.Message,
			RayID:   id,
		})
	}
	return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
		Message: "Error del servidor. Por favor, intenta más tarde.",
		RayID:   id,
	})
}

// isValidationError reports whether the error is one of the pre-network
// form checks a 400 should carry verbatim.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrEmptyCart,
		domain.ErrMissingFields,
		domain.ErrInvalidEmail,
		domain.ErrNoShippingOption,
		domain.ErrShippingDisabled,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

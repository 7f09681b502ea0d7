package handler

import (
	"errors"
	"fmt"
	"net/http"

	"uniform-storefront/internal/core/backend"
	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/core/session"
	"uniform-storefront/internal/features/customers/domain"
	"uniform-storefront/internal/features/customers/ports"
	"uniform-storefront/internal/features/customers/service"
	notifports "uniform-storefront/internal/features/notifications/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CustomerHandler handles HTTP requests for customer accounts.
type CustomerHandler struct {
	service  ports.CustomerService
	notifier notifports.Notifier
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(s ports.CustomerService, notifier notifports.Notifier) *CustomerHandler {
	return &CustomerHandler{service: s, notifier: notifier}
}

// LoginRequest is the body for POST /customers/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /customers/register.
// @Summary Register a customer account
// @Tags Customers
// @Accept json
// @Produce json
// @Param registration body domain.Registration true "Account details"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers/register [post]
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var reg domain.Registration
	if err := c.BodyParser(&reg); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	sid := session.FromCtx(c)
	customer, err := h.service.Register(c.Context(), sid, reg)
	if err != nil {
		return h.fail(c, "Failed to register customer", err)
	}

	h.notifier.Success(c.Context(), sid, fmt.Sprintf("¡Bienvenido, %s! Tu cuenta fue creada exitosamente.", customer.FullName), 0)
	return c.Status(http.StatusCreated).JSON(customer)
}

// Login handles POST /customers/login.
// @Summary Log a customer in
// @Tags Customers
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} domain.Customer
// @Failure 401 {object} map[string]string
// @Router /customers/login [post]
func (h *CustomerHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	sid := session.FromCtx(c)
	customer, err := h.service.Login(c.Context(), sid, req.Email, req.Password)
	if err != nil {
		return h.fail(c, "Failed to login customer", err)
	}

	h.notifier.Success(c.Context(), sid, fmt.Sprintf("¡Bienvenido de nuevo, %s!", customer.FullName), 0)
	return c.Status(http.StatusOK).JSON(customer)
}

// Logout handles POST /customers/logout.
// @Summary Log the session out
// @Tags Customers
// @Produce json
// @Success 200 {object} map[string]string
// @Router /customers/logout [post]
func (h *CustomerHandler) Logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.Context(), session.FromCtx(c)); err != nil {
		return h.fail(c, "Failed to logout customer", err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Sesión cerrada",
	})
}

// Profile handles GET /customers/me.
// @Summary Get the authenticated customer
// @Description Returns 401 when the session holds no valid customer token.
// @Tags Customers
// @Produce json
// @Success 200 {object} domain.Customer
// @Failure 401 {object} map[string]string
// @Router /customers/me [get]
func (h *CustomerHandler) Profile(c *fiber.Ctx) error {
	customer, err := h.service.Profile(c.Context(), session.FromCtx(c))
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"message": "No autenticado",
			})
		}
		return h.fail(c, "Failed to fetch customer profile", err)
	}
	return c.Status(http.StatusOK).JSON(customer)
}

// fail maps validation sentinels to 400, backend APIErrors to their
// upstream status, and everything else to 500.
func (h *CustomerHandler) fail(c *fiber.Ctx, logMsg string, err error) error {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrPasswordTooShort):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	logger.Get().Error(logMsg, zap.Error(err))

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{"message": apiErr.Message})
	}
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

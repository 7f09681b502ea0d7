package handler

import (
	"net/http"

	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/core/session"
	"uniform-storefront/internal/features/notifications/domain"
	"uniform-storefront/internal/features/notifications/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NotificationHandler exposes the session's toast queue.
type NotificationHandler struct {
	service ports.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// Drain handles GET /notifications.
// @Summary Drain pending notifications
// @Description Returns and clears every pending toast for the session.
// @Tags Notifications
// @Produce json
// @Success 200 {array} domain.Toast
// @Failure 500 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) Drain(c *fiber.Ctx) error {
	toasts, err := h.service.Drain(c.Context(), session.FromCtx(c))
	if err != nil {
		logger.Get().Error("Failed to drain notifications", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	if toasts == nil {
		toasts = []domain.Toast{}
	}
	return c.Status(http.StatusOK).JSON(toasts)
}

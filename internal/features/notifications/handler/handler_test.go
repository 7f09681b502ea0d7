package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"uniform-storefront/internal/core/session"
	"uniform-storefront/internal/features/notifications/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockNotificationService serves a canned queue.
type mockNotificationService struct {
	toasts   []domain.Toast
	drainErr error
}

func (m *mockNotificationService) Success(ctx context.Context, sessionID, message string, durationMs int) {
}
func (m *mockNotificationService) Error(ctx context.Context, sessionID, message string, durationMs int) {
}
func (m *mockNotificationService) Warning(ctx context.Context, sessionID, message string, durationMs int) {
}
func (m *mockNotificationService) Info(ctx context.Context, sessionID, message string, durationMs int) {
}

func (m *mockNotificationService) Drain(ctx context.Context, sessionID string) ([]domain.Toast, error) {
	return m.toasts, m.drainErr
}

func newTestApp(svc *mockNotificationService) *fiber.App {
	app := fiber.New()
	app.Use(session.Middleware())
	app.Get("/notifications", NewNotificationHandler(svc).Drain)
	return app
}

// TestNotificationHandler_Drain returns the pending toasts.
func TestNotificationHandler_Drain(t *testing.T) {
	svc := &mockNotificationService{toasts: []domain.Toast{
		{Type: domain.ToastSuccess, Message: "Producto agregado al carrito", Duration: 4000},
	}}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/notifications", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var toasts []domain.Toast
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&toasts))
	require.Len(t, toasts, 1)
	assert.Equal(t, domain.ToastSuccess, toasts[0].Type)
	assert.Equal(t, 4000, toasts[0].Duration)
}

// TestNotificationHandler_Drain_Empty serializes an empty queue as [],
// never null.
func TestNotificationHandler_Drain_Empty(t *testing.T) {
	app := newTestApp(&mockNotificationService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/notifications", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

// TestNotificationHandler_Drain_Error returns a 500 without leaking the cause.
func TestNotificationHandler_Drain_Error(t *testing.T) {
	app := newTestApp(&mockNotificationService{drainErr: errors.New("redis down")})

	resp, err := app.Test(httptest.NewRequest("GET", "/notifications", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "redis down")
}

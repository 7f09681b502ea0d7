package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"uniform-storefront/internal/core/session"
	"uniform-storefront/internal/features/cart/domain"
	catalog "uniform-storefront/internal/features/catalog/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCartService records the arguments of the last call.
type mockCartService struct {
	cart *domain.Cart

	lastProductID  string
	lastQuantity   int
	lastEmbroidery string
	lastNotify     bool
	clearCalls     int
}

func (m *mockCartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return m.cart, nil
}

func (m *mockCartService) Add(ctx context.Context, sessionID, productID string, qty int, embroidered bool, embroideryName string, notify bool) (*domain.Cart, error) {
	m.lastProductID = productID
	m.lastQuantity = qty
	m.lastEmbroidery = embroideryName
	m.lastNotify = notify
	return m.cart, nil
}

func (m *mockCartService) Remove(ctx context.Context, sessionID, productID string, notify bool) (*domain.Cart, error) {
	m.lastProductID = productID
	m.lastNotify = notify
	return m.cart, nil
}

func (m *mockCartService) UpdateQuantity(ctx context.Context, sessionID, productID string, qty int, notify bool) (*domain.Cart, error) {
	m.lastProductID = productID
	m.lastQuantity = qty
	m.lastNotify = notify
	return m.cart, nil
}

func (m *mockCartService) Clear(ctx context.Context, sessionID string, notify bool) error {
	m.clearCalls++
	m.lastNotify = notify
	return nil
}

func newTestApp(svc *mockCartService) *fiber.App {
	handler := NewCartHandler(svc)

	app := fiber.New()
	app.Use(session.Middleware())
	app.Get("/cart", handler.Get)
	app.Post("/cart/items", handler.AddItem)
	app.Put("/cart/items/:productId", handler.UpdateItem)
	app.Delete("/cart/items/:productId", handler.RemoveItem)
	app.Delete("/cart", handler.Clear)
	return app
}

func filledCart() *domain.Cart {
	cart := &domain.Cart{}
	cart.Add(catalog.Product{ID: "prod-1", Name: "Polera", Price: 1000, Stock: 5}, 2, false, "")
	return cart
}

// TestCartHandler_Get verifies the response carries the aggregates.
func TestCartHandler_Get(t *testing.T) {
	app := newTestApp(&mockCartService{cart: filledCart()})

	req := httptest.NewRequest("GET", "/cart", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result CartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, int64(2000), result.Total)
	assert.Equal(t, 2, result.ItemCount)
	assert.Len(t, result.Items, 1)
}

// TestCartHandler_Get_EmptyCartHasItemsArray verifies an empty cart
// serializes items as [] rather than null.
func TestCartHandler_Get_EmptyCartHasItemsArray(t *testing.T) {
	app := newTestApp(&mockCartService{cart: &domain.Cart{}})

	req := httptest.NewRequest("GET", "/cart", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	body := make([]byte, 1024)
	n, _ := resp.Body.Read(body)
	assert.Contains(t, string(body[:n]), `"items":[]`)
}

// TestCartHandler_AddItem verifies body decoding and the notify default.
func TestCartHandler_AddItem(t *testing.T) {
	svc := &mockCartService{cart: filledCart()}
	app := newTestApp(svc)

	body := `{"productId":"prod-1","quantity":2,"isEmbroidered":true,"embroideryName":"Martina"}`
	req := httptest.NewRequest("POST", "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "prod-1", svc.lastProductID)
	assert.Equal(t, 2, svc.lastQuantity)
	assert.Equal(t, "Martina", svc.lastEmbroidery)
	assert.True(t, svc.lastNotify)
}

// TestCartHandler_AddItem_SilentFlag verifies notify:false is honored.
func TestCartHandler_AddItem_SilentFlag(t *testing.T) {
	svc := &mockCartService{cart: filledCart()}
	app := newTestApp(svc)

	body := `{"productId":"prod-1","quantity":1,"notify":false}`
	req := httptest.NewRequest("POST", "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)

	require.NoError(t, err)
	assert.False(t, svc.lastNotify)
}

// TestCartHandler_AddItem_MissingProduct verifies the required field.
func TestCartHandler_AddItem_MissingProduct(t *testing.T) {
	app := newTestApp(&mockCartService{cart: filledCart()})

	req := httptest.NewRequest("POST", "/cart/items", strings.NewReader(`{"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// TestCartHandler_UpdateItem verifies quantity updates default to silent.
func TestCartHandler_UpdateItem(t *testing.T) {
	svc := &mockCartService{cart: filledCart()}
	app := newTestApp(svc)

	req := httptest.NewRequest("PUT", "/cart/items/prod-1", strings.NewReader(`{"quantity":4}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "prod-1", svc.lastProductID)
	assert.Equal(t, 4, svc.lastQuantity)
	assert.False(t, svc.lastNotify)
}

// TestCartHandler_RemoveItem verifies the path parameter and notify
// query default.
func TestCartHandler_RemoveItem(t *testing.T) {
	svc := &mockCartService{cart: &domain.Cart{}}
	app := newTestApp(svc)

	req := httptest.NewRequest("DELETE", "/cart/items/prod-1", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "prod-1", svc.lastProductID)
	assert.True(t, svc.lastNotify)
}

// TestCartHandler_Clear verifies the cart is cleared and notify can be
// suppressed via query.
func TestCartHandler_Clear(t *testing.T) {
	svc := &mockCartService{cart: &domain.Cart{}}
	app := newTestApp(svc)

	req := httptest.NewRequest("DELETE", "/cart?notify=false", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, svc.clearCalls)
	assert.False(t, svc.lastNotify)
}

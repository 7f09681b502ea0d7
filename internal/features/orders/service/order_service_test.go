package service

import (
	"context"
	"errors"
	"testing"

	"uniform-storefront/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOrderProvider serves scripted orders and records the token used.
type mockOrderProvider struct {
	orders    []domain.Order
	order     *domain.Order
	err       error
	usedToken string
}

func (m *mockOrderProvider) MyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	m.usedToken = token
	if m.err != nil {
		return nil, m.err
	}
	return m.orders, nil
}

func (m *mockOrderProvider) OrderByID(ctx context.Context, id string) (*domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

// mockTokenSource serves a fixed token.
type mockTokenSource struct {
	token string
	err   error
}

func (m *mockTokenSource) Token(ctx context.Context, sessionID string) (string, error) {
	return m.token, m.err
}

// TestOrderService_MyOrders_Success verifies the session token reaches
// the provider.
func TestOrderService_MyOrders_Success(t *testing.T) {
	provider := &mockOrderProvider{orders: []domain.Order{{ID: "ord-1", OrderNumber: "ORD-001"}}}
	svc := NewOrderService(provider, &mockTokenSource{token: "tok-1"})

	orders, err := svc.MyOrders(context.Background(), "sess-1")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "tok-1", provider.usedToken)
}

// TestOrderService_MyOrders_NotAuthenticated verifies a logged-out
// session never reaches the backend.
func TestOrderService_MyOrders_NotAuthenticated(t *testing.T) {
	provider := &mockOrderProvider{}
	svc := NewOrderService(provider, &mockTokenSource{token: ""})

	_, err := svc.MyOrders(context.Background(), "sess-1")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, provider.usedToken)
}

// TestOrderService_MyOrders_TokenLookupFails wraps the infrastructure
// error.
func TestOrderService_MyOrders_TokenLookupFails(t *testing.T) {
	svc := NewOrderService(&mockOrderProvider{}, &mockTokenSource{err: errors.New("redis down")})

	_, err := svc.MyOrders(context.Background(), "sess-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve session token")
}

// TestOrderService_OrderByID passes through.
func TestOrderService_OrderByID(t *testing.T) {
	provider := &mockOrderProvider{order: &domain.Order{ID: "ord-1"}}
	svc := NewOrderService(provider, &mockTokenSource{})

	order, err := svc.OrderByID(context.Background(), "ord-1")

	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.ID)
}

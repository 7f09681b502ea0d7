package adapters

import (
	"context"
	"fmt"
	"net/url"

	"uniform-storefront/internal/core/backend"
	"uniform-storefront/internal/features/orders/domain"
)

// BackendAdapter implements ports.OrderProvider against the store backend.
type BackendAdapter struct {
	client *backend.Client
}

// NewBackendAdapter creates an orders adapter on top of the backend client.
func NewBackendAdapter(client *backend.Client) *BackendAdapter {
	return &BackendAdapter{client: client}
}

// MyOrders returns the authenticated customer's order history.
func (a *BackendAdapter) MyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := a.client.Get(ctx, "/orders/my-orders", token, &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch customer orders: %w", err)
	}
	return orders, nil
}

// OrderByID retrieves a single order.
func (a *BackendAdapter) OrderByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := a.client.Get(ctx, "/orders/"+url.PathEscape(id), "", &order); err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", id, err)
	}
	return &order, nil
}

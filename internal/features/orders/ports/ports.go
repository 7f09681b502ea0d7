package ports

import (
	"context"

	"uniform-storefront/internal/features/orders/domain"
)

// OrderProvider defines the secondary port for reading orders from the
// backend API.
type OrderProvider interface {
	// MyOrders returns the authenticated customer's order history.
	MyOrders(ctx context.Context, token string) ([]domain.Order, error)
	// OrderByID retrieves a single order.
	OrderByID(ctx context.Context, id string) (*domain.Order, error)
}

// TokenSource yields the customer token bound to a session, empty when
// the session is logged out.
type TokenSource interface {
	Token(ctx context.Context, sessionID string) (string, error)
}

// OrderService defines the primary port for order history reads.
type OrderService interface {
	// MyOrders returns the order history for the session's customer.
	MyOrders(ctx context.Context, sessionID string) ([]domain.Order, error)
	// OrderByID retrieves a single order.
	OrderByID(ctx context.Context, id string) (*domain.Order, error)
}

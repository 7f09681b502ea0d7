package service

import (
	"context"
	"errors"
	"fmt"

	"uniform-storefront/internal/features/orders/domain"
	"uniform-storefront/internal/features/orders/ports"
)

// ErrNotAuthenticated is returned when the session has no customer token.
var ErrNotAuthenticated = errors.New("no authenticated customer for session")

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	provider ports.OrderProvider
	tokens   ports.TokenSource
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(provider ports.OrderProvider, tokens ports.TokenSource) *OrderServiceImpl {
	return &OrderServiceImpl{
		provider: provider,
		tokens:   tokens,
	}
}

// MyOrders returns the order history for the session's customer.
func (s *OrderServiceImpl) MyOrders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	token, err := s.tokens.Token(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve session token: %w", err)
	}
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	orders, err := s.provider.MyOrders(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch orders: %w", err)
	}
	return orders, nil
}

// OrderByID retrieves a single order.
func (s *OrderServiceImpl) OrderByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.provider.OrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch order: %w", err)
	}
	return order, nil
}

package adapters

import (
	"context"
	"fmt"
	"net/url"

	"uniform-storefront/internal/core/backend"
	"uniform-storefront/internal/features/checkout/domain"
	orders "uniform-storefront/internal/features/orders/domain"
)

// BackendAdapter implements ports.CheckoutGateway against the store backend.
type BackendAdapter struct {
	client *backend.Client
}

// NewBackendAdapter creates a checkout adapter on top of the backend client.
func NewBackendAdapter(client *backend.Client) *BackendAdapter {
	return &BackendAdapter{client: client}
}

// ShippingOptions returns the delivery methods on offer.
func (a *BackendAdapter) ShippingOptions(ctx context.Context) ([]orders.ShippingOption, error) {
	var options []orders.ShippingOption
	if err := a.client.Get(ctx, "/orders/shipping/types", "", &options); err != nil {
		return nil, fmt.Errorf("failed to fetch shipping options: %w", err)
	}
	return options, nil
}

// CreateOrder submits the draft and returns the persisted order. The
// bearer token is optional: guests may order too.
func (a *BackendAdapter) CreateOrder(ctx context.Context, token string, draft domain.DraftOrder) (*orders.Order, error) {
	var order orders.Order
	if err := a.client.Post(ctx, "/orders", token, draft, &order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// InitiatePayment starts the external payment for an order.
func (a *BackendAdapter) InitiatePayment(ctx context.Context, orderID string) (*domain.PaymentHandoff, error) {
	var handoff domain.PaymentHandoff
	path := "/orders/" + url.PathEscape(orderID) + "/webpay/init"
	if err := a.client.Post(ctx, path, "", nil, &handoff); err != nil {
		return nil, fmt.Errorf("failed to initiate payment for order %s: %w", orderID, err)
	}
	return &handoff, nil
}

// confirmRequest is the wire shape of the confirmation call.
type confirmRequest struct {
	Token string `json:"token"`
}

// ConfirmPayment confirms the payment identified by the returned token.
func (a *BackendAdapter) ConfirmPayment(ctx context.Context, token string) (*orders.Order, error) {
	var order orders.Order
	if err := a.client.Post(ctx, "/orders/webpay/confirm", "", confirmRequest{Token: token}, &order); err != nil {
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}
	return &order, nil
}

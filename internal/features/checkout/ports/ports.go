package ports

import (
	"context"

	cartdomain "uniform-storefront/internal/features/cart/domain"
	"uniform-storefront/internal/features/checkout/domain"
	customersdomain "uniform-storefront/internal/features/customers/domain"
	orders "uniform-storefront/internal/features/orders/domain"
)

// CheckoutGateway defines the secondary port for the order and payment
// calls the orchestrator makes against the backend.
type CheckoutGateway interface {
	// ShippingOptions returns the delivery methods on offer.
	ShippingOptions(ctx context.Context) ([]orders.ShippingOption, error)
	// CreateOrder submits the draft and returns the persisted order.
	CreateOrder(ctx context.Context, token string, draft domain.DraftOrder) (*orders.Order, error)
	// InitiatePayment starts the external payment for an order.
	InitiatePayment(ctx context.Context, orderID string) (*domain.PaymentHandoff, error)
	// ConfirmPayment confirms the payment identified by the returned token.
	ConfirmPayment(ctx context.Context, token string) (*orders.Order, error)
}

// CartAccess is the slice of the cart the orchestrator needs: read the
// lines at submit, clear after a confirmed payment.
type CartAccess interface {
	Get(ctx context.Context, sessionID string) (*cartdomain.Cart, error)
	Clear(ctx context.Context, sessionID string, notify bool) error
}

// ProfileAccess yields the session's authenticated customer, if any, for
// form pre-fill and the order-creation bearer token.
type ProfileAccess interface {
	Profile(ctx context.Context, sessionID string) (*customersdomain.Customer, error)
	Token(ctx context.Context, sessionID string) (string, error)
}

// CheckoutForm is the form state collected from the user.
type CheckoutForm struct {
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	CustomerPhone   string              `json:"customerPhone"`
	ShippingAddress string              `json:"shippingAddress"`
	ShippingType    orders.ShippingType `json:"shippingType"`
	Notes           string              `json:"notes"`
}

// Prefill is the initial checkout page state: the form (pre-populated for
// an authenticated customer), the shipping options with the first one
// selected by default, and the current cart aggregates.
type Prefill struct {
	Form            CheckoutForm            `json:"form"`
	ShippingOptions []orders.ShippingOption `json:"shippingOptions"`
	// SelectedShipping is the default selection, empty when the backend
	// offers no options.
	SelectedShipping orders.ShippingType `json:"selectedShipping,omitempty"`
	Subtotal         int64               `json:"subtotal"`
	ItemCount        int                 `json:"itemCount"`
}

// CheckoutService defines the primary port for the checkout flow.
type CheckoutService interface {
	// Prefill assembles the initial checkout page state.
	Prefill(ctx context.Context, sessionID string) (*Prefill, error)
	// Submit validates the form, creates the order, initiates payment and
	// returns the handoff whose URL the browser must navigate to.
	Submit(ctx context.Context, sessionID string, form CheckoutForm) (*domain.PaymentHandoff, error)
	// Confirm resolves the callback: the sentinel or a missing token fails
	// the attempt without touching the backend; a real token is confirmed
	// and, on success, the cart is cleared.
	Confirm(ctx context.Context, sessionID, token string) (*orders.Order, error)
}

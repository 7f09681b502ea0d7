package service

import (
	"context"
	"fmt"
	"strings"

	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/features/checkout/domain"
	"uniform-storefront/internal/features/checkout/ports"
	notifports "uniform-storefront/internal/features/notifications/ports"
	orders "uniform-storefront/internal/features/orders/domain"

	"go.uber.org/zap"
)

// CheckoutServiceImpl implements ports.CheckoutService. Order creation and
// payment confirmation are single-shot calls: a failure leaves the attempt
// re-submittable, never retried here.
type CheckoutServiceImpl struct {
	gateway  ports.CheckoutGateway
	cart     ports.CartAccess
	profiles ports.ProfileAccess
	notifier notifports.Notifier
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(gateway ports.CheckoutGateway, cart ports.CartAccess, profiles ports.ProfileAccess, notifier notifports.Notifier) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		gateway:  gateway,
		cart:     cart,
		profiles: profiles,
		notifier: notifier,
	}
}

// Prefill assembles the initial checkout page state: shipping options with
// the first pre-selected, the form populated from the authenticated
// profile (blank for guests), and the current cart aggregates.
func (s *CheckoutServiceImpl) Prefill(ctx context.Context, sessionID string) (*ports.Prefill, error) {
	cart, err := s.cart.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	// The page still renders without shipping options; submission is what
	// requires one.
	options, err := s.gateway.ShippingOptions(ctx)
	if err != nil {
		logger.Get().Warn("Failed to fetch shipping options", zap.Error(err))
		options = nil
	}

	prefill := &ports.Prefill{
		ShippingOptions: options,
		Subtotal:        cart.Total(),
		ItemCount:       cart.ItemCount(),
	}
	if len(options) > 0 {
		prefill.SelectedShipping = options[0].Type
	}

	if customer, err := s.profiles.Profile(ctx, sessionID); err == nil && customer != nil {
		address := customer.Address
		if parts := joinNonEmpty(customer.Address, customer.City, customer.Region); parts != "" {
			address = parts
		}
		prefill.Form = ports.CheckoutForm{
			CustomerName:    customer.FullName,
			CustomerEmail:   customer.Email,
			CustomerPhone:   customer.Phone,
			ShippingAddress: address,
		}
	}

	return prefill, nil
}

// Submit validates the form before any network call, creates the order,
// initiates the payment, and returns the handoff the browser must follow.
// Failures after validation revert the attempt to Collecting with an
// error toast; the cart is untouched either way.
func (s *CheckoutServiceImpl) Submit(ctx context.Context, sessionID string, form ports.CheckoutForm) (*domain.PaymentHandoff, error) {
	attempt := domain.NewAttempt()

	cart, err := s.cart.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	draft := domain.DraftOrder{
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		CustomerPhone:   form.CustomerPhone,
		ShippingAddress: form.ShippingAddress,
		ShippingType:    form.ShippingType,
		Notes:           form.Notes,
		PaymentMethod:   "webpay",
	}
	for _, line := range cart.Lines {
		draft.Items = append(draft.Items, domain.DraftItem{
			ProductID:      line.Product.ID,
			Quantity:       line.Quantity,
			IsEmbroidered:  line.Embroidered,
			EmbroideryName: line.EmbroideryName,
		})
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	options, err := s.gateway.ShippingOptions(ctx)
	if err != nil {
		return s.failSubmit(ctx, sessionID, attempt, err)
	}
	if err := shippingOffered(options, form.ShippingType); err != nil {
		return nil, err
	}

	if err := attempt.To(domain.StateSubmitting); err != nil {
		return nil, err
	}

	token, err := s.profiles.Token(ctx, sessionID)
	if err != nil {
		logger.Get().Warn("Failed to resolve session token, submitting as guest", zap.Error(err))
		token = ""
	}

	order, err := s.gateway.CreateOrder(ctx, token, draft)
	if err != nil {
		return s.failSubmit(ctx, sessionID, attempt, err)
	}

	if err := attempt.To(domain.StateAwaitingPayment); err != nil {
		return nil, err
	}

	handoff, err := s.gateway.InitiatePayment(ctx, order.ID)
	if err != nil {
		return s.failSubmit(ctx, sessionID, attempt, err)
	}
	if handoff.URL == "" {
		return s.failSubmit(ctx, sessionID, attempt, domain.ErrNoRedirectURL)
	}

	logger.Get().Info("Checkout handed off to payer",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
	)
	return handoff, nil
}

// Confirm resolves the payment callback. The attempt is rebuilt at
// Returned: nothing in memory survives the external redirect, so the
// token is the only continuity state.
func (s *CheckoutServiceImpl) Confirm(ctx context.Context, sessionID, token string) (*orders.Order, error) {
	attempt := domain.ResumeAttempt()

	if token == "" || token == domain.TokenRejected {
		if err := attempt.To(domain.StateFailed); err != nil {
			return nil, err
		}
		return nil, domain.ErrPaymentRejected
	}

	if err := attempt.To(domain.StateConfirming); err != nil {
		return nil, err
	}

	order, err := s.gateway.ConfirmPayment(ctx, token)
	if err != nil {
		if terr := attempt.To(domain.StateFailed); terr != nil {
			return nil, terr
		}
		return nil, err
	}

	if err := attempt.To(domain.StateSucceeded); err != nil {
		return nil, err
	}

	// The confirmation page communicates the outcome; clearing is silent.
	// A failed clear must not fail a payment that already went through.
	if err := s.cart.Clear(ctx, sessionID, false); err != nil {
		logger.Get().Error("Failed to clear cart after confirmed payment",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}
	return order, nil
}

// failSubmit reverts the attempt to Collecting and raises an error toast,
// leaving the user free to resubmit.
func (s *CheckoutServiceImpl) failSubmit(ctx context.Context, sessionID string, attempt *domain.Attempt, cause error) (*domain.PaymentHandoff, error) {
	if attempt.State() != domain.StateCollecting {
		if err := attempt.To(domain.StateCollecting); err != nil {
			return nil, err
		}
	}
	s.notifier.Error(ctx, sessionID, cause.Error(), 0)
	return nil, cause
}

// shippingOffered checks the selected method against the offered list.
func shippingOffered(options []orders.ShippingOption, selected orders.ShippingType) error {
	for _, opt := range options {
		if opt.Type == selected {
			if !opt.Enabled {
				return domain.ErrShippingDisabled
			}
			return nil
		}
	}
	return domain.ErrNoShippingOption
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

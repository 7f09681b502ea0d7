package adapters

import (
	"context"
	"fmt"

	"uniform-storefront/internal/core/backend"
	"uniform-storefront/internal/features/customers/domain"
)

// BackendAdapter implements ports.CustomerGateway against the store backend.
type BackendAdapter struct {
	client *backend.Client
}

// NewBackendAdapter creates a customers adapter on top of the backend client.
func NewBackendAdapter(client *backend.Client) *BackendAdapter {
	return &BackendAdapter{client: client}
}

// registerRequest is the wire shape of the registration call. The password
// confirmation never leaves the storefront.
type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the {customer, token} envelope both auth calls return.
type authResponse struct {
	Customer domain.Customer `json:"customer"`
	Token    string          `json:"token"`
}

// Register creates an account and returns the customer plus a token.
func (a *BackendAdapter) Register(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	req := registerRequest{
		FullName: reg.FullName,
		Email:    reg.Email,
		Phone:    reg.Phone,
		Password: reg.Password,
		Address:  reg.Address,
		City:     reg.City,
		Region:   reg.Region,
	}

	var resp authResponse
	if err := a.client.Post(ctx, "/customers/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}
	return &domain.Session{Token: resp.Token, Customer: resp.Customer}, nil
}

// Login authenticates and returns the customer plus a token.
func (a *BackendAdapter) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var resp authResponse
	if err := a.client.Post(ctx, "/customers/login", "", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("failed to login customer: %w", err)
	}
	return &domain.Session{Token: resp.Token, Customer: resp.Customer}, nil
}

// Profile fetches the customer bound to the token.
func (a *BackendAdapter) Profile(ctx context.Context, token string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := a.client.Get(ctx, "/customers/me", token, &customer); err != nil {
		return nil, fmt.Errorf("failed to fetch customer profile: %w", err)
	}
	return &customer, nil
}

package ports

import (
	"context"

	"uniform-storefront/internal/features/customers/domain"
)

// CustomerGateway defines the secondary port for customer operations on
// the backend API.
type CustomerGateway interface {
	// Register creates an account and returns the customer plus a token.
	Register(ctx context.Context, reg domain.Registration) (*domain.Session, error)
	// Login authenticates and returns the customer plus a token.
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	// Profile fetches the customer bound to the token.
	Profile(ctx context.Context, token string) (*domain.Customer, error)
}

// SessionRepository defines the secondary port for the persisted customer
// session (token + cached profile).
type SessionRepository interface {
	// Load returns the session, or nil when none exists or it is unreadable.
	Load(ctx context.Context, sessionID string) (*domain.Session, error)
	// Save persists the session.
	Save(ctx context.Context, sessionID string, s *domain.Session) error
	// Delete erases the session.
	Delete(ctx context.Context, sessionID string) error
}

// CustomerService defines the primary port for account operations.
type CustomerService interface {
	// Register validates the input locally, creates the account and logs
	// the session in.
	Register(ctx context.Context, sessionID string, reg domain.Registration) (*domain.Customer, error)
	// Login validates the credentials locally, then authenticates.
	Login(ctx context.Context, sessionID, email, password string) (*domain.Customer, error)
	// Logout drops the session.
	Logout(ctx context.Context, sessionID string) error
	// Profile re-validates the stored token against the backend. Any
	// failure silently degrades to logged-out (nil, ErrNotAuthenticated).
	Profile(ctx context.Context, sessionID string) (*domain.Customer, error)
	// Token returns the session's customer token, empty when logged out.
	Token(ctx context.Context, sessionID string) (string, error)
}

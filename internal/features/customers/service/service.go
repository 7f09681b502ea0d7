package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/features/customers/domain"
	"uniform-storefront/internal/features/customers/ports"

	"go.uber.org/zap"
)

// Validation errors surfaced before any network call. The messages are
// shown to the user as-is.
var (
	ErrMissingFields    = errors.New("Por favor, completa todos los campos requeridos")
	ErrEmailRequired    = errors.New("Por favor, ingresa tu email")
	ErrInvalidEmail     = errors.New("Por favor, ingresa un email válido")
	ErrPasswordRequired = errors.New("Por favor, ingresa tu contraseña")
	ErrPasswordMismatch = errors.New("Las contraseñas no coinciden")
	ErrPasswordTooShort = errors.New("La contraseña debe tener al menos 6 caracteres")
)

// ErrNotAuthenticated marks a session without a valid customer.
var ErrNotAuthenticated = errors.New("session is not authenticated")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CustomerServiceImpl implements ports.CustomerService.
type CustomerServiceImpl struct {
	gateway  ports.CustomerGateway
	sessions ports.SessionRepository
}

// NewCustomerService creates a new CustomerServiceImpl.
func NewCustomerService(gateway ports.CustomerGateway, sessions ports.SessionRepository) *CustomerServiceImpl {
	return &CustomerServiceImpl{
		gateway:  gateway,
		sessions: sessions,
	}
}

// Register validates the input locally, creates the account on the
// backend, and binds the returned token to the session.
func (s *CustomerServiceImpl) Register(ctx context.Context, sessionID string, reg domain.Registration) (*domain.Customer, error) {
	if strings.TrimSpace(reg.FullName) == "" || strings.TrimSpace(reg.Email) == "" || strings.TrimSpace(reg.Phone) == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(reg.Email) {
		return nil, ErrInvalidEmail
	}
	if reg.Password != reg.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(reg.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	session, err := s.gateway.Register(ctx, reg)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, sessionID, session); err != nil {
		return nil, fmt.Errorf("service: failed to persist session: %w", err)
	}
	return &session.Customer, nil
}

// Login validates the credentials locally, then authenticates against the
// backend and binds the returned token to the session.
func (s *CustomerServiceImpl) Login(ctx context.Context, sessionID, email, password string) (*domain.Customer, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(password) == "" {
		return nil, ErrPasswordRequired
	}

	session, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, sessionID, session); err != nil {
		return nil, fmt.Errorf("service: failed to persist session: %w", err)
	}
	return &session.Customer, nil
}

// Logout drops the session.
func (s *CustomerServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("service: failed to delete session: %w", err)
	}
	return nil
}

// Profile re-validates the stored token against the backend, refreshing
// the cached profile on success. Any failure degrades to logged-out: the
// session is dropped and ErrNotAuthenticated returned, never a user-facing
// error.
func (s *CustomerServiceImpl) Profile(ctx context.Context, sessionID string) (*domain.Customer, error) {
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrNotAuthenticated
	}

	customer, err := s.gateway.Profile(ctx, session.Token)
	if err != nil {
		logger.Get().Warn("Customer token no longer valid, logging session out",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, ErrNotAuthenticated
	}

	session.Customer = *customer
	if err := s.sessions.Save(ctx, sessionID, session); err != nil {
		logger.Get().Warn("Failed to refresh cached profile", zap.Error(err))
	}
	return customer, nil
}

// Token returns the session's customer token, empty when logged out.
func (s *CustomerServiceImpl) Token(ctx context.Context, sessionID string) (string, error) {
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("service: failed to load session: %w", err)
	}
	if session == nil {
		return "", nil
	}
	return session.Token, nil
}

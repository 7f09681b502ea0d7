package service

import (
	"context"
	"fmt"

	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/features/notifications/domain"
	"uniform-storefront/internal/features/notifications/ports"

	"go.uber.org/zap"
)

// NotificationServiceImpl implements ports.NotificationService.
type NotificationServiceImpl struct {
	repo ports.ToastRepository
}

// NewNotificationService creates a new NotificationServiceImpl.
func NewNotificationService(repo ports.ToastRepository) *NotificationServiceImpl {
	return &NotificationServiceImpl{repo: repo}
}

// Success queues a success toast for the session.
func (s *NotificationServiceImpl) Success(ctx context.Context, sessionID, message string, durationMs int) {
	s.push(ctx, sessionID, message, domain.ToastSuccess, durationMs)
}

// Error queues an error toast for the session.
func (s *NotificationServiceImpl) Error(ctx context.Context, sessionID, message string, durationMs int) {
	s.push(ctx, sessionID, message, domain.ToastError, durationMs)
}

// Warning queues a warning toast for the session.
func (s *NotificationServiceImpl) Warning(ctx context.Context, sessionID, message string, durationMs int) {
	s.push(ctx, sessionID, message, domain.ToastWarning, durationMs)
}

// Info queues an info toast for the session.
func (s *NotificationServiceImpl) Info(ctx context.Context, sessionID, message string, durationMs int) {
	s.push(ctx, sessionID, message, domain.ToastInfo, durationMs)
}

// Drain returns and removes every pending toast for the session.
func (s *NotificationServiceImpl) Drain(ctx context.Context, sessionID string) ([]domain.Toast, error) {
	toasts, err := s.repo.Drain(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to drain toasts: %w", err)
	}
	return toasts, nil
}

// push is best-effort: a lost toast is a cosmetic failure, never an error
// for the operation that raised it.
func (s *NotificationServiceImpl) push(ctx context.Context, sessionID, message string, toastType domain.ToastType, durationMs int) {
	if sessionID == "" {
		return
	}
	if err := s.repo.Push(ctx, sessionID, domain.NewToast(message, toastType, durationMs)); err != nil {
		logger.Get().Warn("Failed to queue toast",
			zap.String("session_id", sessionID),
			zap.String("type", string(toastType)),
			zap.Error(err),
		)
	}
}

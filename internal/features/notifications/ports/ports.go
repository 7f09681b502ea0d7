package ports

import (
	"context"

	"uniform-storefront/internal/features/notifications/domain"
)

// Notifier is the user-facing feedback channel consumed by other features.
// Delivery is best-effort: implementations log failures and never return them.
type Notifier interface {
	Success(ctx context.Context, sessionID, message string, durationMs int)
	Error(ctx context.Context, sessionID, message string, durationMs int)
	Warning(ctx context.Context, sessionID, message string, durationMs int)
	Info(ctx context.Context, sessionID, message string, durationMs int)
}

// NotificationService is the primary port: the Notifier plus the drain
// operation the UI polls.
type NotificationService interface {
	Notifier
	// Drain returns and removes every pending toast for the session.
	Drain(ctx context.Context, sessionID string) ([]domain.Toast, error)
}

// ToastRepository defines the secondary port for per-session toast queues.
type ToastRepository interface {
	// Push appends a toast to the session's queue.
	Push(ctx context.Context, sessionID string, toast domain.Toast) error
	// Drain returns and clears the session's queue.
	Drain(ctx context.Context, sessionID string) ([]domain.Toast, error)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// ToastType classifies a toast for presentation.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastWarning ToastType = "warning"
	ToastInfo    ToastType = "info"
)

// DefaultDuration is how long a toast stays on screen when the caller
// does not say otherwise, in milliseconds.
const DefaultDuration = 4000

// Toast is a single user-facing feedback message queued for a session.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      ToastType `json:"type"`
	// Duration is the display time in milliseconds. 0 falls back to the
	// client default.
	Duration  int       `json:"duration,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewToast creates a toast with a fresh id.
func NewToast(message string, toastType ToastType, durationMs int) Toast {
	if durationMs <= 0 {
		durationMs = DefaultDuration
	}
	return Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      toastType,
		Duration:  durationMs,
		CreatedAt: time.Now(),
	}
}

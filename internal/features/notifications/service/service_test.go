package service

import (
	"context"
	"errors"
	"testing"

	"uniform-storefront/internal/features/notifications/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockToastRepository records pushes and serves a scripted drain.
type mockToastRepository struct {
	pushed   []domain.Toast
	pushErr  error
	drainErr error
}

func (m *mockToastRepository) Push(ctx context.Context, sessionID string, toast domain.Toast) error {
	if m.pushErr != nil {
		return m.pushErr
	}
	m.pushed = append(m.pushed, toast)
	return nil
}

func (m *mockToastRepository) Drain(ctx context.Context, sessionID string) ([]domain.Toast, error) {
	if m.drainErr != nil {
		return nil, m.drainErr
	}
	drained := m.pushed
	m.pushed = nil
	return drained, nil
}

// TestNotificationService_TypesAndDurations verifies each method queues
// the right toast type and the duration default kicks in.
func TestNotificationService_TypesAndDurations(t *testing.T) {
	repo := &mockToastRepository{}
	svc := NewNotificationService(repo)
	ctx := context.Background()

	svc.Success(ctx, "sess-1", "listo", 2500)
	svc.Error(ctx, "sess-1", "falló", 0)
	svc.Warning(ctx, "sess-1", "ojo", 4000)
	svc.Info(ctx, "sess-1", "dato", 2000)

	require.Len(t, repo.pushed, 4)
	assert.Equal(t, domain.ToastSuccess, repo.pushed[0].Type)
	assert.Equal(t, 2500, repo.pushed[0].Duration)
	assert.Equal(t, domain.ToastError, repo.pushed[1].Type)
	assert.Equal(t, domain.DefaultDuration, repo.pushed[1].Duration)
	assert.Equal(t, domain.ToastWarning, repo.pushed[2].Type)
	assert.Equal(t, domain.ToastInfo, repo.pushed[3].Type)
	assert.NotEmpty(t, repo.pushed[0].ID)
}

// TestNotificationService_PushFailureSwallowed verifies delivery failures
// never reach the caller.
func TestNotificationService_PushFailureSwallowed(t *testing.T) {
	repo := &mockToastRepository{pushErr: errors.New("redis down")}
	svc := NewNotificationService(repo)

	// Must not panic or propagate anything.
	svc.Success(context.Background(), "sess-1", "listo", 0)
}

// TestNotificationService_EmptySessionIgnored verifies toasts without a
// session are dropped.
func TestNotificationService_EmptySessionIgnored(t *testing.T) {
	repo := &mockToastRepository{}
	svc := NewNotificationService(repo)

	svc.Success(context.Background(), "", "listo", 0)

	assert.Empty(t, repo.pushed)
}

// TestNotificationService_Drain verifies pass-through and error wrapping.
func TestNotificationService_Drain(t *testing.T) {
	repo := &mockToastRepository{}
	svc := NewNotificationService(repo)
	ctx := context.Background()

	svc.Success(ctx, "sess-1", "listo", 0)

	toasts, err := svc.Drain(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, toasts, 1)

	repo.drainErr = errors.New("redis down")
	_, err = svc.Drain(ctx, "sess-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to drain toasts")
}

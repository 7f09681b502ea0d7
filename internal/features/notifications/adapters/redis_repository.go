package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"uniform-storefront/internal/core/cache"
	"uniform-storefront/internal/features/notifications/domain"
)

const (
	toastKeyPrefix = "toasts:"

	// queueTTL bounds how long undelivered toasts linger. A session that
	// never polls again should not hold redis memory forever.
	queueTTL = 5 * time.Minute
)

// RedisToastRepository implements ports.ToastRepository on the cache port.
// Each session owns one JSON-encoded queue; the session's requests are
// serialized by the browser, so read-modify-write is safe here.
type RedisToastRepository struct {
	cache cache.Cache
}

// NewRedisToastRepository creates a new RedisToastRepository.
func NewRedisToastRepository(c cache.Cache) *RedisToastRepository {
	return &RedisToastRepository{cache: c}
}

// Push appends a toast to the session's queue.
func (r *RedisToastRepository) Push(ctx context.Context, sessionID string, toast domain.Toast) error {
	key := toastKeyPrefix + sessionID

	toasts, err := r.load(ctx, key)
	if err != nil {
		return err
	}
	toasts = append(toasts, toast)

	data, err := json.Marshal(toasts)
	if err != nil {
		return fmt.Errorf("failed to marshal toast queue: %w", err)
	}
	if err := r.cache.Set(ctx, key, data, queueTTL); err != nil {
		return fmt.Errorf("failed to save toast queue: %w", err)
	}
	return nil
}

// Drain returns and clears the session's queue.
func (r *RedisToastRepository) Drain(ctx context.Context, sessionID string) ([]domain.Toast, error) {
	key := toastKeyPrefix + sessionID

	toasts, err := r.load(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(toasts) == 0 {
		return nil, nil
	}

	if err := r.cache.Delete(ctx, key); err != nil {
		return nil, fmt.Errorf("failed to clear toast queue: %w", err)
	}
	return toasts, nil
}

func (r *RedisToastRepository) load(ctx context.Context, key string) ([]domain.Toast, error) {
	data, err := r.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load toast queue: %w", err)
	}

	var toasts []domain.Toast
	if err := json.Unmarshal(data, &toasts); err != nil {
		// A corrupt queue is dropped, not surfaced.
		return nil, nil
	}
	return toasts, nil
}

package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"uniform-storefront/internal/core/cache"
	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/features/customers/domain"

	"go.uber.org/zap"
)

const sessionKeyPrefix = "customer_session:"

// RedisSessionRepository implements ports.SessionRepository on the cache
// port: one JSON-encoded token+profile blob per browser session.
type RedisSessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisSessionRepository creates a new RedisSessionRepository.
func NewRedisSessionRepository(c cache.Cache, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{cache: c, ttl: ttl}
}

// Load returns the session, or nil when none exists. An unreadable blob is
// dropped and reported as logged-out, never as an error.
func (r *RedisSessionRepository) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := r.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load customer session: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil || s.Token == "" {
		logger.Get().Warn("Discarding unreadable customer session",
			zap.String("session_id", sessionID),
		)
		_ = r.cache.Delete(ctx, sessionKeyPrefix+sessionID)
		return nil, nil
	}
	return &s, nil
}

// Save persists the session.
func (r *RedisSessionRepository) Save(ctx context.Context, sessionID string, s *domain.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal customer session: %w", err)
	}
	if err := r.cache.Set(ctx, sessionKeyPrefix+sessionID, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save customer session: %w", err)
	}
	return nil
}

// Delete erases the session.
func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.cache.Delete(ctx, sessionKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to delete customer session: %w", err)
	}
	return nil
}

package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"uniform-storefront/internal/core/cache"
	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/features/cart/domain"

	"go.uber.org/zap"
)

const cartKeyPrefix = "cart:"

// RedisCartRepository implements ports.CartRepository using the cache port.
// One JSON snapshot per session, rewritten in full after every mutation.
type RedisCartRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisCartRepository creates a new RedisCartRepository. The TTL is
// refreshed on every save, so only abandoned carts expire.
func NewRedisCartRepository(c cache.Cache, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{cache: c, ttl: ttl}
}

// Load returns the session's cart. A missing key or an unreadable snapshot
// both degrade to an empty cart; only infrastructure failures error.
func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := r.cache.Get(ctx, cartKeyPrefix+sessionID)
	if errors.Is(err, cache.ErrCacheMiss) {
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		logger.Get().Warn("Discarding unreadable cart snapshot",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return &domain.Cart{}, nil
	}
	return &cart, nil
}

// Save persists the full cart snapshot.
func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}
	if err := r.cache.Set(ctx, cartKeyPrefix+sessionID, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

// Delete erases the persisted snapshot.
func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.cache.Delete(ctx, cartKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}

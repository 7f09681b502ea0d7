package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"uniform-storefront/internal/core/cache"
	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/features/catalog/domain"
	"uniform-storefront/internal/features/catalog/ports"

	"go.uber.org/zap"
)

const (
	productsCacheKey   = "catalog:products"
	featuredCacheKey   = "catalog:featured"
	categoriesCacheKey = "catalog:categories"

	// listTTL keeps catalog lists fresh enough for stock display while
	// sparing the backend on busy pages.
	listTTL = 60 * time.Second
)

// CatalogServiceImpl implements ports.CatalogService with a redis
// read-through cache in front of the backend for the list endpoints.
// Cache failures degrade to a direct backend call.
type CatalogServiceImpl struct {
	provider ports.CatalogProvider
	cache    cache.Cache
}

// NewCatalogService creates a new CatalogServiceImpl.
func NewCatalogService(provider ports.CatalogProvider, c cache.Cache) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		provider: provider,
		cache:    c,
	}
}

// Products returns every active product, cached.
func (s *CatalogServiceImpl) Products(ctx context.Context) ([]domain.Product, error) {
	return cachedList(ctx, s.cache, productsCacheKey, func() ([]domain.Product, error) {
		return s.provider.Products(ctx)
	})
}

// Featured returns the highlighted products, cached.
func (s *CatalogServiceImpl) Featured(ctx context.Context) ([]domain.Product, error) {
	return cachedList(ctx, s.cache, featuredCacheKey, func() ([]domain.Product, error) {
		return s.provider.Featured(ctx)
	})
}

// ProductByID retrieves a single product. Always fetched fresh: the cart
// relies on current stock when reconciling quantities.
func (s *CatalogServiceImpl) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.provider.ProductByID(ctx, id)
}

// ProductBySlug retrieves a single product by its URL slug.
func (s *CatalogServiceImpl) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.provider.ProductBySlug(ctx, slug)
}

// ProductsByCategory returns the active products of one category.
func (s *CatalogServiceImpl) ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return cachedList(ctx, s.cache, productsCacheKey+":"+categoryID, func() ([]domain.Product, error) {
		return s.provider.ProductsByCategory(ctx, categoryID)
	})
}

// Categories returns every category, cached.
func (s *CatalogServiceImpl) Categories(ctx context.Context) ([]domain.Category, error) {
	return cachedList(ctx, s.cache, categoriesCacheKey, func() ([]domain.Category, error) {
		return s.provider.Categories(ctx)
	})
}

// CategoryByID retrieves a single category.
func (s *CatalogServiceImpl) CategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.provider.CategoryByID(ctx, id)
}

// CategoryBySlug retrieves a single category by its URL slug.
func (s *CatalogServiceImpl) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.provider.CategoryBySlug(ctx, slug)
}

// cachedList serves a JSON list from the cache, falling back to fetch and
// best-effort re-populating on a miss.
func cachedList[T any](ctx context.Context, c cache.Cache, key string, fetch func() ([]T, error)) ([]T, error) {
	if data, err := c.Get(ctx, key); err == nil {
		var items []T
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		// Unreadable entries are dropped and refetched.
		_ = c.Delete(ctx, key)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Get().Warn("Catalog cache unavailable", zap.String("key", key), zap.Error(err))
	}

	items, err := fetch()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if err := c.Set(ctx, key, data, listTTL); err != nil {
			logger.Get().Warn("Failed to populate catalog cache", zap.String("key", key), zap.Error(err))
		}
	}

	return items, nil
}

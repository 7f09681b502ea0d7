package adapters

import (
	"context"
	"fmt"
	"net/url"

	"uniform-storefront/internal/core/backend"
	"uniform-storefront/internal/features/catalog/domain"
)

// BackendAdapter implements ports.CatalogProvider against the store
// backend REST API.
type BackendAdapter struct {
	client *backend.Client
}

// NewBackendAdapter creates a catalog adapter on top of the backend client.
func NewBackendAdapter(client *backend.Client) *BackendAdapter {
	return &BackendAdapter{client: client}
}

// Products returns every active product.
func (a *BackendAdapter) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := a.client.Get(ctx, "/products?isActive=true", "", &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// Featured returns the products highlighted on the home page.
func (a *BackendAdapter) Featured(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := a.client.Get(ctx, "/products/featured", "", &products); err != nil {
		return nil, fmt.Errorf("failed to fetch featured products: %w", err)
	}
	return products, nil
}

// ProductByID retrieves a single product.
func (a *BackendAdapter) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := a.client.Get(ctx, "/products/"+url.PathEscape(id), "", &product); err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return &product, nil
}

// ProductBySlug retrieves a single product by its URL slug.
func (a *BackendAdapter) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var product domain.Product
	if err := a.client.Get(ctx, "/products/slug/"+url.PathEscape(slug), "", &product); err != nil {
		return nil, fmt.Errorf("failed to fetch product by slug %s: %w", slug, err)
	}
	return &product, nil
}

// ProductsByCategory returns the active products of one category.
func (a *BackendAdapter) ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	var products []domain.Product
	path := "/products?categoryId=" + url.QueryEscape(categoryID) + "&isActive=true"
	if err := a.client.Get(ctx, path, "", &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products for category %s: %w", categoryID, err)
	}
	return products, nil
}

// Categories returns every category.
func (a *BackendAdapter) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := a.client.Get(ctx, "/categories", "", &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// CategoryByID retrieves a single category.
func (a *BackendAdapter) CategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	var category domain.Category
	if err := a.client.Get(ctx, "/categories/"+url.PathEscape(id), "", &category); err != nil {
		return nil, fmt.Errorf("failed to fetch category %s: %w", id, err)
	}
	return &category, nil
}

// CategoryBySlug retrieves a single category by its URL slug.
func (a *BackendAdapter) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var category domain.Category
	if err := a.client.Get(ctx, "/categories/slug/"+url.PathEscape(slug), "", &category); err != nil {
		return nil, fmt.Errorf("failed to fetch category by slug %s: %w", slug, err)
	}
	return &category, nil
}

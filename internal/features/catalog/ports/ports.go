package ports

import (
	"context"

	"uniform-storefront/internal/features/catalog/domain"
)

// CatalogProvider defines the secondary port for reading the store catalog
// from the backend API.
type CatalogProvider interface {
	// Products returns every active product.
	Products(ctx context.Context) ([]domain.Product, error)
	// Featured returns the products highlighted on the home page.
	Featured(ctx context.Context) ([]domain.Product, error)
	// ProductByID retrieves a single product.
	ProductByID(ctx context.Context, id string) (*domain.Product, error)
	// ProductBySlug retrieves a single product by its URL slug.
	ProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// ProductsByCategory returns the active products of one category.
	ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	// Categories returns every category.
	Categories(ctx context.Context) ([]domain.Category, error)
	// CategoryByID retrieves a single category.
	CategoryByID(ctx context.Context, id string) (*domain.Category, error)
	// CategoryBySlug retrieves a single category by its URL slug.
	CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

// CatalogService defines the primary port for catalog reads.
type CatalogService interface {
	CatalogProvider
}

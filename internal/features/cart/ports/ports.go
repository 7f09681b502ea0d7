package ports

import (
	"context"

	"uniform-storefront/internal/features/cart/domain"
)

// CartService defines the primary port for cart mutations. Stock
// violations are soft: the mutation is skipped, a warning toast is raised
// when notify is set, and no error is returned.
type CartService interface {
	// Get returns the session's cart, empty when none exists.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	// Add puts qty units of a product (with optional embroidery) in the cart.
	Add(ctx context.Context, sessionID, productID string, qty int, embroidered bool, embroideryName string, notify bool) (*domain.Cart, error)
	// Remove drops every line holding the product.
	Remove(ctx context.Context, sessionID, productID string, notify bool) (*domain.Cart, error)
	// UpdateQuantity sets the quantity of the product's lines.
	// Quantities of zero or below remove the product instead.
	UpdateQuantity(ctx context.Context, sessionID, productID string, qty int, notify bool) (*domain.Cart, error)
	// Clear empties the cart and erases the persisted snapshot.
	Clear(ctx context.Context, sessionID string, notify bool) error
}

// CartRepository defines the secondary port for the persisted cart snapshot.
type CartRepository interface {
	// Load returns the session's cart. A missing or unreadable snapshot
	// yields an empty cart, never an error.
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	// Save persists the full cart snapshot.
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	// Delete erases the persisted snapshot.
	Delete(ctx context.Context, sessionID string) error
}

package service

import (
	"context"
	"fmt"

	"uniform-storefront/internal/features/cart/domain"
	"uniform-storefront/internal/features/cart/ports"
	catalogports "uniform-storefront/internal/features/catalog/ports"
	notifports "uniform-storefront/internal/features/notifications/ports"
)

// Toast display times, matching the storefront UI.
const (
	addedToastMs   = 4000
	removedToastMs = 2500
	updatedToastMs = 2000
)

// CartServiceImpl implements ports.CartService. Every mutation persists
// the full snapshot after the in-memory change it reflects.
type CartServiceImpl struct {
	repo     ports.CartRepository
	catalog  catalogports.CatalogService
	notifier notifports.Notifier
}

// NewCartService creates a new CartServiceImpl.
func NewCartService(repo ports.CartRepository, catalog catalogports.CatalogService, notifier notifports.Notifier) *CartServiceImpl {
	return &CartServiceImpl{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
	}
}

// Get returns the session's cart, empty when none exists.
func (s *CartServiceImpl) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}
	return cart, nil
}

// Add fetches the product for its current stock and price, merges qty
// units into the matching line, and persists the snapshot. A stock
// violation skips the mutation and raises a warning toast instead.
func (s *CartServiceImpl) Add(ctx context.Context, sessionID, productID string, qty int, embroidered bool, embroideryName string, notify bool) (*domain.Cart, error) {
	product, err := s.catalog.ProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch product for cart: %w", err)
	}

	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	if qty < 1 {
		qty = 1
	}

	result := cart.Add(*product, qty, embroidered, embroideryName)
	if result.RejectedStock {
		if notify {
			s.notifier.Warning(ctx, sessionID,
				fmt.Sprintf("Solo hay %d %s disponibles de \"%s\"", product.Stock, unitWord(product.Stock), product.Name),
				addedToastMs)
		}
		return cart, nil
	}

	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("service: failed to save cart: %w", err)
	}

	if notify {
		if result.Merged {
			s.notifier.Success(ctx, sessionID,
				fmt.Sprintf("¡%s agregado al carrito! (%d %s)", product.Name, result.Line.Quantity, unitWord(result.Line.Quantity)),
				addedToastMs)
		} else if qty == 1 {
			s.notifier.Success(ctx, sessionID,
				fmt.Sprintf("¡%s agregado al carrito!", product.Name),
				addedToastMs)
		} else {
			s.notifier.Success(ctx, sessionID,
				fmt.Sprintf("¡%d unidades de %s agregadas al carrito!", qty, product.Name),
				addedToastMs)
		}
	}
	return cart, nil
}

// Remove drops every line holding the product and persists the snapshot.
func (s *CartServiceImpl) Remove(ctx context.Context, sessionID, productID string, notify bool) (*domain.Cart, error) {
	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	removed := cart.Remove(productID)
	if len(removed) == 0 {
		return cart, nil
	}

	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("service: failed to save cart: %w", err)
	}

	if notify {
		s.notifier.Success(ctx, sessionID,
			fmt.Sprintf("\"%s\" eliminado del carrito", removed[0].Product.Name),
			removedToastMs)
	}
	return cart, nil
}

// UpdateQuantity sets the quantity of the product's lines. Zero or
// negative quantities degrade to Remove. Stock violations skip the
// mutation with a warning toast.
func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, sessionID, productID string, qty int, notify bool) (*domain.Cart, error) {
	if qty <= 0 {
		return s.Remove(ctx, sessionID, productID, notify)
	}

	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	result := cart.UpdateQuantity(productID, qty)
	if !result.Found {
		return cart, nil
	}
	if result.RejectedStock {
		if notify {
			stock := result.Line.Product.Stock
			s.notifier.Warning(ctx, sessionID,
				fmt.Sprintf("Solo hay %d %s disponibles de \"%s\"", stock, unitWord(stock), result.Line.Product.Name),
				addedToastMs)
		}
		return cart, nil
	}

	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("service: failed to save cart: %w", err)
	}

	if notify && result.Changed {
		s.notifier.Success(ctx, sessionID,
			fmt.Sprintf("Cantidad actualizada: %d %s", qty, unitWord(qty)),
			updatedToastMs)
	}
	return cart, nil
}

// Clear empties the cart and erases the persisted snapshot.
func (s *CartServiceImpl) Clear(ctx context.Context, sessionID string, notify bool) error {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("service: failed to clear cart: %w", err)
	}
	if notify {
		s.notifier.Success(ctx, sessionID, "Carrito vaciado", removedToastMs)
	}
	return nil
}

func unitWord(n int) string {
	if n == 1 {
		return "unidad"
	}
	return "unidades"
}

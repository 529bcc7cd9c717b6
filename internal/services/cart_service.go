package services

import (
	"context"
	"errors"

	"silktouch/internal/apperror"
	"silktouch/internal/locker"
	"silktouch/internal/models"
	"silktouch/internal/repositories"
)

// CartItemInput identifies a cart line by product, size and color.
type CartItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// CartService manages the per-user shopping cart. Every mutation runs under the
// owner's lock so concurrent requests cannot lose updates.
type CartService struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
	locks    locker.Locker
}

func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository, locks locker.Locker) *CartService {
	return &CartService{carts: carts, products: products, locks: locks}
}

// userLockKey is shared by cart mutations and order placement.
func userLockKey(userID string) string {
	return "user:" + userID
}

// Get returns the user's cart, or an empty one if the user has none yet.
func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, storeError(err, "Cart not found")
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// AddItem merges the line into the cart, creating the cart on first use.
// Quantity defaults to 1.
func (s *CartService) AddItem(ctx context.Context, userID string, in CartItemInput) (*models.Cart, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity < 1 {
		return nil, apperror.Validation("Validation failed", map[string]string{"quantity": "must be at least 1"})
	}
	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		return nil, storeError(err, "Product not found")
	}

	return s.mutate(ctx, userID, true, func(cart *models.Cart) {
		cart.AddItem(in.ProductID, quantity, in.Size, in.Color)
	})
}

// UpdateItem sets the absolute quantity of a line. Zero or less removes it.
func (s *CartService) UpdateItem(ctx context.Context, userID string, in CartItemInput) (*models.Cart, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.Quantity == nil {
		return nil, apperror.Validation("Validation failed", map[string]string{"quantity": "is required"})
	}
	return s.mutate(ctx, userID, false, func(cart *models.Cart) {
		cart.UpdateItem(in.ProductID, *in.Quantity, in.Size, in.Color)
	})
}

// RemoveItem drops every line matching the product, size and color.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID, size, color string) (*models.Cart, error) {
	return s.mutate(ctx, userID, false, func(cart *models.Cart) {
		cart.RemoveItem(productID, size, color)
	})
}

// mutate loads the cart under the user's lock, applies fn and saves the result.
// Without create a missing cart is reported as NotFound.
func (s *CartService) mutate(ctx context.Context, userID string, create bool, fn func(*models.Cart)) (*models.Cart, error) {
	release, err := s.locks.Lock(ctx, userLockKey(userID))
	if err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	defer release()

	cart, err := s.carts.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, repositories.ErrNotFound) && create:
		cart = &models.Cart{UserID: userID}
	case err != nil:
		return nil, storeError(err, "Cart not found")
	}

	fn(cart)
	for i := range cart.Items {
		cart.Items[i].Product = nil
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, storeError(err, "Cart not found")
	}

	saved, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, storeError(err, "Cart not found")
	}
	return saved, nil
}

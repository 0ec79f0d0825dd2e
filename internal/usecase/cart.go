package usecase

import (
	"context"

	"github.com/suoapvs/alexcoffee/internal/cartstore"
	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
	"github.com/suoapvs/alexcoffee/internal/domain/repository"
)

// CartUseCase manages the session shopping cart. Every operation
// re-reads product rows so cart math always runs on live prices.
type CartUseCase struct {
	carts    cartstore.Store
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts cartstore.Store, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Cart returns the session's cart, creating an empty one on first access.
func (u *CartUseCase) Cart(ctx context.Context, sessionID string) (*model.ShoppingCart, error) {
	return u.carts.Get(ctx, sessionID)
}

// AddProduct puts quantity units of a product into the session's cart.
// A duplicate product collapses onto the existing cart entry.
func (u *CartUseCase) AddProduct(ctx context.Context, sessionID string, productID int64, quantity int) (*model.ShoppingCart, error) {
	if quantity < 1 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.AddSalePosition(model.NewSalePosition(product, quantity))
	if err := u.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveProduct drops the cart entry referencing the product.
func (u *CartUseCase) RemoveProduct(ctx context.Context, sessionID string, productID int64) (*model.ShoppingCart, error) {
	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for _, position := range cart.SalePositions() {
		if position.Product() != nil && position.Product().ID() == productID {
			cart.RemoveSalePosition(position)
			break
		}
	}

	if err := u.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the session's cart.
func (u *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	cart.ClearSalePositions()
	return u.carts.Save(ctx, sessionID, cart)
}

package usecase

import (
	"context"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository"
)

// CartUseCase is the only component allowed to mutate an order's line
// items. All boundary rules live here: quantity validation and the stock
// limit on add, and deletion of a line whose quantity reaches zero.
type CartUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(orders repository.OrderRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{orders: orders, products: products}
}

// Summary returns the actor's open order, creating one on first access.
func (u *CartUseCase) Summary(ctx context.Context, actor model.CartActor) (*model.Order, error) {
	return u.orders.OpenForActor(ctx, actor)
}

// Add appends a new line item to the actor's open order. An identical
// product/colour/size combination already in the cart is not merged; a
// second line is created.
func (u *CartUseCase) Add(ctx context.Context, actor model.CartActor, productID int64, colour, size string, quantity int) (*model.LineItem, error) {
	if quantity < 1 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, domainErrors.ErrNotFound
	}
	if quantity > product.Stock {
		return nil, domainErrors.InsufficientStockError{Available: product.Stock}
	}
	if !product.HasColour(colour) || !product.HasSize(size) {
		return nil, domainErrors.ErrInvalidVariation
	}

	order, err := u.orders.OpenForActor(ctx, actor)
	if err != nil {
		return nil, err
	}

	item := &model.LineItem{
		OrderID:      order.ID,
		ProductID:    product.ID,
		ProductTitle: product.Title,
		UnitPrice:    product.Price,
		Quantity:     quantity,
		Colour:       colour,
		Size:         size,
	}
	return u.orders.AddItem(ctx, item)
}

// Increase bumps a line item's quantity by one. Stock is not re-checked
// here; only Add validates against stock.
func (u *CartUseCase) Increase(ctx context.Context, actor model.CartActor, itemID int64) error {
	order, err := u.orders.OpenForActor(ctx, actor)
	if err != nil {
		return err
	}
	item, err := u.orders.GetItem(ctx, order.ID, itemID)
	if err != nil {
		return err
	}
	return u.orders.UpdateItemQuantity(ctx, item.ID, item.Quantity+1)
}

// Decrease lowers a line item's quantity by one; a line reaching zero is
// removed from the order in the same operation.
func (u *CartUseCase) Decrease(ctx context.Context, actor model.CartActor, itemID int64) error {
	order, err := u.orders.OpenForActor(ctx, actor)
	if err != nil {
		return err
	}
	item, err := u.orders.GetItem(ctx, order.ID, itemID)
	if err != nil {
		return err
	}
	if item.Quantity <= 1 {
		return u.orders.RemoveItem(ctx, item.ID)
	}
	return u.orders.UpdateItemQuantity(ctx, item.ID, item.Quantity-1)
}

// Remove deletes a line item from the actor's open order.
func (u *CartUseCase) Remove(ctx context.Context, actor model.CartActor, itemID int64) error {
	order, err := u.orders.OpenForActor(ctx, actor)
	if err != nil {
		return err
	}
	item, err := u.orders.GetItem(ctx, order.ID, itemID)
	if err != nil {
		return err
	}
	return u.orders.RemoveItem(ctx, item.ID)
}

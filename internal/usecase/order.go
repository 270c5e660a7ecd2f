package usecase

import (
	"context"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository"
)

// OrderUseCase serves order history for authenticated customers.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// History returns the user's placed orders, newest first.
func (u *OrderUseCase) History(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListPlacedByUser(ctx, userID)
}

// Get returns a single order. Orders of other users are reported as not
// found rather than forbidden.
func (u *OrderUseCase) Get(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID == nil || *order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

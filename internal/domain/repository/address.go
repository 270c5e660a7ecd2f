package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// AddressRepository describes persistence operations for saved addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) (*model.Address, error)
	GetByID(ctx context.Context, id int64) (*model.Address, error)
	ListByUser(ctx context.Context, userID int64, kind model.AddressKind) ([]model.Address, error)
}

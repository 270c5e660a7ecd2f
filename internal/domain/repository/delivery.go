package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// DeliveryRepository describes persistence operations for delivery options.
type DeliveryRepository interface {
	List(ctx context.Context) ([]model.DeliveryOption, error)
	GetByID(ctx context.Context, id int64) (*model.DeliveryOption, error)
}

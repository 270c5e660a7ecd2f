package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	// Category filters by category name when non-empty.
	Category string
	// IncludeInactive lists retired products too; the storefront shows
	// active products only, the back-office sees everything.
	IncludeInactive bool
}

// ProductRepository describes persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
}

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
}

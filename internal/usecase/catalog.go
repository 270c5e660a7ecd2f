package usecase

import (
	"context"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository"
)

// CatalogUseCase serves the customer-facing product catalog.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// Categories lists all catalog categories.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// Products lists active products, optionally filtered by category name.
func (u *CatalogUseCase) Products(ctx context.Context, category string) ([]model.Product, error) {
	return u.products.List(ctx, repository.ProductFilter{Category: category})
}

// ProductBySlug resolves a single active product for the detail page.
func (u *CatalogUseCase) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	product, err := u.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, domainErrors.ErrNotFound
	}
	return product, nil
}

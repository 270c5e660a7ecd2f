package usecase

import (
	"context"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository"
)

// ProductInput carries the fields of the staff product form.
type ProductInput struct {
	Title       string
	Slug        string
	Description string
	PriceMinor  int64
	Stock       int
	Active      bool
	Colours     []string
	Sizes       []string
	CategoryID  int64
}

// StaffUseCase covers back-office product management and order review.
// The transport layer authenticates the staff capability; repositories
// here receive already-authorized calls.
type StaffUseCase struct {
	products   repository.ProductRepository
	orders     repository.OrderRepository
	categories repository.CategoryRepository
	pageSize   int
}

// NewStaffUseCase constructs StaffUseCase.
func NewStaffUseCase(products repository.ProductRepository, orders repository.OrderRepository, categories repository.CategoryRepository, pageSize int) *StaffUseCase {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &StaffUseCase{products: products, orders: orders, categories: categories, pageSize: pageSize}
}

// PlacedOrders lists placed orders for review, newest first.
func (u *StaffUseCase) PlacedOrders(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListPlaced(ctx, u.pageSize)
}

// Products lists the whole catalog, retired products included.
func (u *StaffUseCase) Products(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx, repository.ProductFilter{IncludeInactive: true})
}

// CreateProduct validates and stores a new catalog product. An empty slug
// is derived from the title.
func (u *StaffUseCase) CreateProduct(ctx context.Context, input ProductInput) (*model.Product, error) {
	product, err := u.productFromInput(ctx, input)
	if err != nil {
		return nil, err
	}
	return u.products.Create(ctx, product)
}

// UpdateProduct validates and stores changes to an existing product.
func (u *StaffUseCase) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*model.Product, error) {
	existing, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product, err := u.productFromInput(ctx, input)
	if err != nil {
		return nil, err
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if err := u.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return u.products.GetByID(ctx, id)
}

// DeleteProduct removes a product from the catalog.
func (u *StaffUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

func (u *StaffUseCase) productFromInput(ctx context.Context, input ProductInput) (*model.Product, error) {
	if input.Title == "" {
		return nil, domainErrors.ErrInvalidProduct
	}
	price, err := model.NewMoney(input.PriceMinor)
	if err != nil {
		return nil, err
	}
	if input.Stock < 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	if _, err := u.categories.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}

	return &model.Product{
		Title:       input.Title,
		Slug:        slug,
		Description: input.Description,
		Price:       price,
		Stock:       input.Stock,
		Active:      input.Active,
		Colours:     input.Colours,
		Sizes:       input.Sizes,
		CategoryID:  input.CategoryID,
	}, nil
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/domain/model"
	"storefront/internal/test"
)

func newCatalogFixture(t *testing.T) (*CatalogUseCase, *test.ProductRepositoryStub, *test.CategoryRepositoryStub) {
	t.Helper()
	products := test.NewProductRepositoryStub()
	categories := &test.CategoryRepositoryStub{}
	return NewCatalogUseCase(products, categories), products, categories
}

func TestCatalogProductsActiveOnly(t *testing.T) {
	uc, products, _ := newCatalogFixture(t)
	products.Seed(model.Product{Title: "Jumper", Slug: "jumper", Active: true})
	products.Seed(model.Product{Title: "Retired", Slug: "retired", Active: false})

	listed, err := uc.Products(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "jumper", listed[0].Slug)
}

func TestCatalogProductsByCategory(t *testing.T) {
	uc, products, _ := newCatalogFixture(t)
	products.CategoryNames = map[int64]string{1: "knitwear", 2: "footwear"}
	products.Seed(model.Product{Title: "Jumper", Slug: "jumper", Active: true, CategoryID: 1})
	products.Seed(model.Product{Title: "Boots", Slug: "boots", Active: true, CategoryID: 2})

	listed, err := uc.Products(context.Background(), "footwear")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "boots", listed[0].Slug)
}

func TestCatalogProductBySlug(t *testing.T) {
	uc, products, _ := newCatalogFixture(t)
	products.Seed(model.Product{Title: "Jumper", Slug: "jumper", Active: true})

	product, err := uc.ProductBySlug(context.Background(), "jumper")
	require.NoError(t, err)
	assert.Equal(t, "Jumper", product.Title)

	_, err = uc.ProductBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestCatalogProductBySlugInactive(t *testing.T) {
	uc, products, _ := newCatalogFixture(t)
	products.Seed(model.Product{Title: "Retired", Slug: "retired", Active: false})

	_, err := uc.ProductBySlug(context.Background(), "retired")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestCatalogCategories(t *testing.T) {
	uc, _, categories := newCatalogFixture(t)
	categories.Categories = []model.Category{{ID: 1, Name: "knitwear"}, {ID: 2, Name: "footwear"}}

	listed, err := uc.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

package usecase

import (
	"go.uber.org/fx"

	"storefront/internal/config"
	"storefront/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewAuthUseCase,
		NewCartUseCase,
		NewCatalogUseCase,
		NewCheckoutUseCase,
		NewOrderUseCase,
		NewPaymentUseCase,
	),
	fx.Provide(newStaffUseCase),
)

type staffParams struct {
	fx.In

	Products   repository.ProductRepository
	Orders     repository.OrderRepository
	Categories repository.CategoryRepository
	Config     *config.Config
}

func newStaffUseCase(p staffParams) *StaffUseCase {
	return NewStaffUseCase(p.Products, p.Orders, p.Categories, p.Config.StaffPageSize)
}

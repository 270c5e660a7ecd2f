package di

import (
	"go.uber.org/fx"

	"storefront/internal/adapter/paygate"
	"storefront/internal/app"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/pkg/auth"
	"storefront/internal/server/http/handlers"
	"storefront/internal/server/http/router"
	"storefront/internal/storage/postgres"
	"storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		paygate.Module,
		usecase.Module,
		fx.Provide(func(client paygate.Client) app.CaptureProvider { return client }),
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

package handlers

import (
	"context"

	"storefront/internal/domain/model"
	pkgAuth "storefront/internal/pkg/auth"
	"storefront/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
}

// CatalogFacade serves the customer-facing catalog.
type CatalogFacade interface {
	Categories(ctx context.Context) ([]model.Category, error)
	Products(ctx context.Context, category string) ([]model.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*model.Product, error)
}

// CartFacade encapsulates cart mutation operations exposed via HTTP.
type CartFacade interface {
	Cart(ctx context.Context, actor model.CartActor) (*model.Order, error)
	AddToCart(ctx context.Context, actor model.CartActor, productID int64, colour, size string, quantity int) (*model.LineItem, error)
	IncreaseCartItem(ctx context.Context, actor model.CartActor, itemID int64) error
	DecreaseCartItem(ctx context.Context, actor model.CartActor, itemID int64) error
	RemoveCartItem(ctx context.Context, actor model.CartActor, itemID int64) error
}

// CheckoutFacade drives an open order through checkout into placement.
type CheckoutFacade interface {
	SavedAddresses(ctx context.Context, userID int64, kind model.AddressKind) ([]model.Address, error)
	SetAddresses(ctx context.Context, actor model.CartActor, userID int64, input usecase.SetAddressesInput) (*model.Order, error)
	DeliveryOptions(ctx context.Context) ([]model.DeliveryOption, error)
	SetDelivery(ctx context.Context, actor model.CartActor, deliveryID int64) (*model.Order, error)
	ConfirmPayment(ctx context.Context, actor model.CartActor, input usecase.ConfirmPaymentInput) (*model.Payment, error)
}

// OrderFacade serves order history.
type OrderFacade interface {
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, userID, orderID int64) (*model.Order, error)
	OrderPayments(ctx context.Context, userID, orderID int64) ([]model.Payment, error)
}

// StaffFacade covers back-office operations.
type StaffFacade interface {
	StaffOrders(ctx context.Context) ([]model.Order, error)
	StaffProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, input usecase.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, input usecase.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	CheckoutFacade
	OrderFacade
	StaffFacade
}

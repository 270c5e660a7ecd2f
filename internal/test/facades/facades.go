// Package facades holds stub implementations of the HTTP layer's facade
// interfaces. They live apart from the repository stubs so that packages
// exercised through those stubs can depend on internal/usecase without
// pulling it into internal/test.
package facades

import (
	"context"
	"time"

	"storefront/internal/domain/model"
	pkgAuth "storefront/internal/pkg/auth"
	"storefront/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (pkgAuth.Claims, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored claims for the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Claims{UserID: 1}, nil
}

// CatalogFacadeStub serves canned catalog data.
type CatalogFacadeStub struct {
	CategoriesFn func(context.Context) ([]model.Category, error)
	ProductsFn   func(context.Context, string) ([]model.Product, error)
	BySlugFn     func(context.Context, string) (*model.Product, error)
}

func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "Knitwear"}}, nil
}

func (s CatalogFacadeStub) Products(ctx context.Context, category string) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, category)
	}
	return []model.Product{{ID: 1, Title: "Jumper", Slug: "jumper", Price: model.Money(4500), Stock: 3, Active: true}}, nil
}

func (s CatalogFacadeStub) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.BySlugFn != nil {
		return s.BySlugFn(ctx, slug)
	}
	return &model.Product{ID: 1, Title: "Jumper", Slug: slug, Price: model.Money(4500), Stock: 3, Active: true}, nil
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	CartFn     func(context.Context, model.CartActor) (*model.Order, error)
	AddFn      func(context.Context, model.CartActor, int64, string, string, int) (*model.LineItem, error)
	IncreaseFn func(context.Context, model.CartActor, int64) error
	DecreaseFn func(context.Context, model.CartActor, int64) error
	RemoveFn   func(context.Context, model.CartActor, int64) error
}

func (s CartFacadeStub) Cart(ctx context.Context, actor model.CartActor) (*model.Order, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, actor)
	}
	return &model.Order{ID: 1, CartToken: actor.Token}, nil
}

func (s CartFacadeStub) AddToCart(ctx context.Context, actor model.CartActor, productID int64, colour, size string, quantity int) (*model.LineItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, actor, productID, colour, size, quantity)
	}
	return &model.LineItem{ID: 1, OrderID: 1, ProductID: productID, Colour: colour, Size: size, Quantity: quantity, UnitPrice: model.Money(4500)}, nil
}

func (s CartFacadeStub) IncreaseCartItem(ctx context.Context, actor model.CartActor, itemID int64) error {
	if s.IncreaseFn != nil {
		return s.IncreaseFn(ctx, actor, itemID)
	}
	return nil
}

func (s CartFacadeStub) DecreaseCartItem(ctx context.Context, actor model.CartActor, itemID int64) error {
	if s.DecreaseFn != nil {
		return s.DecreaseFn(ctx, actor, itemID)
	}
	return nil
}

func (s CartFacadeStub) RemoveCartItem(ctx context.Context, actor model.CartActor, itemID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, actor, itemID)
	}
	return nil
}

// CheckoutFacadeStub provides controllable behaviour for checkout endpoints.
type CheckoutFacadeStub struct {
	SavedAddressesFn func(context.Context, int64, model.AddressKind) ([]model.Address, error)
	SetAddressesFn   func(context.Context, model.CartActor, int64, usecase.SetAddressesInput) (*model.Order, error)
	OptionsFn        func(context.Context) ([]model.DeliveryOption, error)
	SetDeliveryFn    func(context.Context, model.CartActor, int64) (*model.Order, error)
	ConfirmFn        func(context.Context, model.CartActor, usecase.ConfirmPaymentInput) (*model.Payment, error)
}

func (s CheckoutFacadeStub) SavedAddresses(ctx context.Context, userID int64, kind model.AddressKind) ([]model.Address, error) {
	if s.SavedAddressesFn != nil {
		return s.SavedAddressesFn(ctx, userID, kind)
	}
	return []model.Address{{ID: 1, UserID: userID, Line1: "1 High St", Line2: "Flat 2", ZipCode: "N1 1AA", City: "London", Kind: kind}}, nil
}

func (s CheckoutFacadeStub) SetAddresses(ctx context.Context, actor model.CartActor, userID int64, input usecase.SetAddressesInput) (*model.Order, error) {
	if s.SetAddressesFn != nil {
		return s.SetAddressesFn(ctx, actor, userID, input)
	}
	return &model.Order{ID: 1}, nil
}

func (s CheckoutFacadeStub) DeliveryOptions(ctx context.Context) ([]model.DeliveryOption, error) {
	if s.OptionsFn != nil {
		return s.OptionsFn(ctx)
	}
	return []model.DeliveryOption{{ID: 1, Name: "Standard", Cost: model.Money(500)}}, nil
}

func (s CheckoutFacadeStub) SetDelivery(ctx context.Context, actor model.CartActor, deliveryID int64) (*model.Order, error) {
	if s.SetDeliveryFn != nil {
		return s.SetDeliveryFn(ctx, actor, deliveryID)
	}
	cost := model.Money(500)
	return &model.Order{ID: 1, DeliveryID: &deliveryID, DeliveryCost: &cost}, nil
}

func (s CheckoutFacadeStub) ConfirmPayment(ctx context.Context, actor model.CartActor, input usecase.ConfirmPaymentInput) (*model.Payment, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, actor, input)
	}
	return &model.Payment{ID: 1, OrderID: 1, Method: input.Method, CaptureRef: input.CaptureRef, Amount: model.Money(500), Status: model.PaymentStatusPending}, nil
}

// OrderFacadeStub provides controllable behaviour for order history endpoints.
type OrderFacadeStub struct {
	OrdersFn        func(context.Context, int64) ([]model.Order, error)
	OrderFn         func(context.Context, int64, int64) (*model.Order, error)
	OrderPaymentsFn func(context.Context, int64, int64) ([]model.Payment, error)
}

func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	placed := time.Unix(0, 0)
	return []model.Order{{ID: 1, UserID: &userID, Placed: true, PlacedAt: &placed}}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	placed := time.Unix(0, 0)
	return &model.Order{ID: orderID, UserID: &userID, Placed: true, PlacedAt: &placed}, nil
}

func (s OrderFacadeStub) OrderPayments(ctx context.Context, userID, orderID int64) ([]model.Payment, error) {
	if s.OrderPaymentsFn != nil {
		return s.OrderPaymentsFn(ctx, userID, orderID)
	}
	return nil, nil
}

// StaffFacadeStub provides controllable behaviour for back-office endpoints.
type StaffFacadeStub struct {
	StaffOrdersFn   func(context.Context) ([]model.Order, error)
	StaffProductsFn func(context.Context) ([]model.Product, error)
	CreateFn        func(context.Context, usecase.ProductInput) (*model.Product, error)
	UpdateFn        func(context.Context, int64, usecase.ProductInput) (*model.Product, error)
	DeleteFn        func(context.Context, int64) error
}

func (s StaffFacadeStub) StaffOrders(ctx context.Context) ([]model.Order, error) {
	if s.StaffOrdersFn != nil {
		return s.StaffOrdersFn(ctx)
	}
	placed := time.Unix(0, 0)
	return []model.Order{{ID: 1, Placed: true, PlacedAt: &placed}}, nil
}

func (s StaffFacadeStub) StaffProducts(ctx context.Context) ([]model.Product, error) {
	if s.StaffProductsFn != nil {
		return s.StaffProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Title: "Jumper", Slug: "jumper", Price: model.Money(4500)}}, nil
}

func (s StaffFacadeStub) CreateProduct(ctx context.Context, input usecase.ProductInput) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	return &model.Product{ID: 1, Title: input.Title, Slug: input.Slug, Price: model.Money(input.PriceMinor), Stock: input.Stock, Active: input.Active, CategoryID: input.CategoryID}, nil
}

func (s StaffFacadeStub) UpdateProduct(ctx context.Context, id int64, input usecase.ProductInput) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, input)
	}
	return &model.Product{ID: id, Title: input.Title, Slug: input.Slug, Price: model.Money(input.PriceMinor), Stock: input.Stock, Active: input.Active, CategoryID: input.CategoryID}, nil
}

func (s StaffFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	CheckoutFacadeStub
	OrderFacadeStub
	StaffFacadeStub
}

package app

import (
	"context"

	"storefront/internal/domain/model"
	pkgAuth "storefront/internal/pkg/auth"
	"storefront/internal/usecase"
)

// CaptureProvider looks up captures at the payment gateway.
type CaptureProvider interface {
	Fetch(ctx context.Context, captureRef string) (*model.Capture, error)
}

// StorefrontFacade aggregates the use cases behind a single surface for
// the HTTP layer and the background verifier.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	orders   *usecase.OrderUseCase
	staff    *usecase.StaffUseCase
	payments *usecase.PaymentUseCase
	captures CaptureProvider
}

func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	orders *usecase.OrderUseCase,
	staff *usecase.StaffUseCase,
	payments *usecase.PaymentUseCase,
	captures CaptureProvider,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:     auth,
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		orders:   orders,
		staff:    staff,
		payments: payments,
		captures: captures,
	}
}

// --- auth ---

func (f *StorefrontFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

// --- catalog ---

func (f *StorefrontFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *StorefrontFacade) Products(ctx context.Context, category string) ([]model.Product, error) {
	return f.catalog.Products(ctx, category)
}

func (f *StorefrontFacade) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return f.catalog.ProductBySlug(ctx, slug)
}

// --- cart ---

func (f *StorefrontFacade) Cart(ctx context.Context, actor model.CartActor) (*model.Order, error) {
	return f.cart.Summary(ctx, actor)
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, actor model.CartActor, productID int64, colour, size string, quantity int) (*model.LineItem, error) {
	return f.cart.Add(ctx, actor, productID, colour, size, quantity)
}

func (f *StorefrontFacade) IncreaseCartItem(ctx context.Context, actor model.CartActor, itemID int64) error {
	return f.cart.Increase(ctx, actor, itemID)
}

func (f *StorefrontFacade) DecreaseCartItem(ctx context.Context, actor model.CartActor, itemID int64) error {
	return f.cart.Decrease(ctx, actor, itemID)
}

func (f *StorefrontFacade) RemoveCartItem(ctx context.Context, actor model.CartActor, itemID int64) error {
	return f.cart.Remove(ctx, actor, itemID)
}

// --- checkout ---

func (f *StorefrontFacade) SavedAddresses(ctx context.Context, userID int64, kind model.AddressKind) ([]model.Address, error) {
	return f.checkout.SavedAddresses(ctx, userID, kind)
}

func (f *StorefrontFacade) SetAddresses(ctx context.Context, actor model.CartActor, userID int64, input usecase.SetAddressesInput) (*model.Order, error) {
	return f.checkout.SetAddresses(ctx, actor, userID, input)
}

func (f *StorefrontFacade) DeliveryOptions(ctx context.Context) ([]model.DeliveryOption, error) {
	return f.checkout.DeliveryOptions(ctx)
}

func (f *StorefrontFacade) SetDelivery(ctx context.Context, actor model.CartActor, deliveryID int64) (*model.Order, error) {
	return f.checkout.SetDelivery(ctx, actor, deliveryID)
}

func (f *StorefrontFacade) ConfirmPayment(ctx context.Context, actor model.CartActor, input usecase.ConfirmPaymentInput) (*model.Payment, error) {
	return f.checkout.ConfirmPayment(ctx, actor, input)
}

// --- orders ---

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.History(ctx, userID)
}

func (f *StorefrontFacade) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, userID, orderID)
}

// OrderPayments lists the payments recorded against one of the user's
// orders. The ownership check runs through the same lookup as Order.
func (f *StorefrontFacade) OrderPayments(ctx context.Context, userID, orderID int64) ([]model.Payment, error) {
	if _, err := f.orders.Get(ctx, userID, orderID); err != nil {
		return nil, err
	}
	return f.payments.History(ctx, orderID)
}

// --- staff ---

func (f *StorefrontFacade) StaffOrders(ctx context.Context) ([]model.Order, error) {
	return f.staff.PlacedOrders(ctx)
}

func (f *StorefrontFacade) StaffProducts(ctx context.Context) ([]model.Product, error) {
	return f.staff.Products(ctx)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, input usecase.ProductInput) (*model.Product, error) {
	return f.staff.CreateProduct(ctx, input)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, id int64, input usecase.ProductInput) (*model.Product, error) {
	return f.staff.UpdateProduct(ctx, id, input)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.staff.DeleteProduct(ctx, id)
}

// --- payment verification ---

func (f *StorefrontFacade) PaymentsForVerification(ctx context.Context, limit int) ([]model.Payment, error) {
	return f.payments.SelectBatch(ctx, limit)
}

func (f *StorefrontFacade) LookupCapture(ctx context.Context, captureRef string) (*model.Capture, error) {
	return f.captures.Fetch(ctx, captureRef)
}

func (f *StorefrontFacade) ResolvePayment(ctx context.Context, paymentID int64, status model.PaymentStatus) error {
	return f.payments.Resolve(ctx, paymentID, status)
}

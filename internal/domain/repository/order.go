package repository

import (
	"context"
	"time"

	"storefront/internal/domain/model"
)

// OrderRepository describes persistence operations for the cart/order
// aggregate. Line-item mutation goes through here exclusively; handlers
// and other layers never touch items directly.
type OrderRepository interface {
	// OpenForActor resolves the single open order of the given actor,
	// creating one on first access. A guest order is adopted by the user
	// once the actor authenticates.
	OpenForActor(ctx context.Context, actor model.CartActor) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListPlacedByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListPlaced(ctx context.Context, limit int) ([]model.Order, error)

	AddItem(ctx context.Context, item *model.LineItem) (*model.LineItem, error)
	GetItem(ctx context.Context, orderID, itemID int64) (*model.LineItem, error)
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, itemID int64) error

	SetAddresses(ctx context.Context, orderID int64, billingID, shippingID int64) error
	SetDelivery(ctx context.Context, orderID int64, deliveryID int64, cost model.Money) error
	// PlaceWithPayment marks the order placed and records the payment fact
	// in one atomic step. Neither write survives without the other.
	PlaceWithPayment(ctx context.Context, orderID int64, at time.Time, payment *model.Payment) (*model.Payment, error)
}

package model

import (
	"fmt"
	"time"

	domainErrors "storefront/internal/domain/errors"
)

// LineItem is one product/variation/quantity entry within an Order.
// Quantity is at least 1 for as long as the item exists; an item whose
// quantity would reach zero is deleted instead.
type LineItem struct {
	ID           int64
	OrderID      int64
	ProductID    int64
	ProductTitle string
	UnitPrice    Money
	Quantity     int
	Colour       string
	Size         string
	CreatedAt    time.Time
}

// RawTotal returns quantity times unit price in minor units.
func (li LineItem) RawTotal() int64 {
	return int64(li.Quantity) * li.UnitPrice.Minor()
}

// Total returns the line total formatted to two decimal places.
func (li LineItem) Total() string {
	return Money(li.RawTotal()).Format()
}

// Order is the cart/checkout aggregate: an ordered collection of line
// items, optional addresses and delivery choice, and a one-way placement
// state. While Placed is false the order is the actor's mutable cart;
// once placed it is immutable except for payment bookkeeping.
type Order struct {
	ID                int64
	UserID            *int64
	CartToken         string
	StartedAt         time.Time
	Placed            bool
	PlacedAt          *time.Time
	BillingAddressID  *int64
	ShippingAddressID *int64
	DeliveryID        *int64
	// DeliveryCost is the order's own copy of the selected option's cost,
	// taken when the option is chosen. Later edits to the DeliveryOption
	// never change this order's total.
	DeliveryCost *Money
	Items        []LineItem
}

// RawSubtotal sums the raw line totals; zero for an empty order.
func (o *Order) RawSubtotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.RawTotal()
	}
	return total
}

// RawTotal adds the snapshotted delivery cost when a delivery has been
// selected, otherwise returns the subtotal unchanged.
func (o *Order) RawTotal() int64 {
	if o.DeliveryCost == nil {
		return o.RawSubtotal()
	}
	return o.RawSubtotal() + o.DeliveryCost.Minor()
}

// Subtotal returns RawSubtotal formatted to two decimal places.
func (o *Order) Subtotal() string {
	return Money(o.RawSubtotal()).Format()
}

// Total returns RawTotal formatted to two decimal places.
func (o *Order) Total() string {
	return Money(o.RawTotal()).Format()
}

// Place transitions the order into its placed state, stamping PlacedAt
// exactly once. Placing an already placed order is an error, not a no-op.
func (o *Order) Place(at time.Time) error {
	if o.Placed {
		return domainErrors.ErrAlreadyPlaced
	}
	o.Placed = true
	o.PlacedAt = &at
	return nil
}

// Reference returns the human-facing order reference.
func (o *Order) Reference() string {
	return fmt.Sprintf("ORDER-%d", o.ID)
}

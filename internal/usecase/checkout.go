package usecase

import (
	"context"
	"time"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository"
)

// AddressInput carries the fields of a new address entered at checkout.
type AddressInput struct {
	Line1   string
	Line2   string
	ZipCode string
	City    string
}

func (a AddressInput) complete() bool {
	return a.Line1 != "" && a.Line2 != "" && a.ZipCode != "" && a.City != ""
}

// SetAddressesInput selects a saved address or supplies a new one, for
// billing and shipping independently.
type SetAddressesInput struct {
	SelectedBillingID  *int64
	SelectedShippingID *int64
	Billing            AddressInput
	Shipping           AddressInput
}

// ConfirmPaymentInput is the confirmation payload forwarded from the
// payment provider's client-side flow.
type ConfirmPaymentInput struct {
	Amount     string
	Method     string
	CaptureRef string
	RawPayload string
}

// CheckoutUseCase drives an open order through address and delivery
// selection into placement on payment confirmation.
type CheckoutUseCase struct {
	orders     repository.OrderRepository
	deliveries repository.DeliveryRepository
	addresses  repository.AddressRepository

	now func() time.Time
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	orders repository.OrderRepository,
	deliveries repository.DeliveryRepository,
	addresses repository.AddressRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orders:     orders,
		deliveries: deliveries,
		addresses:  addresses,
		now:        time.Now,
	}
}

// SavedAddresses lists the user's stored addresses of the given kind for
// the checkout form.
func (u *CheckoutUseCase) SavedAddresses(ctx context.Context, userID int64, kind model.AddressKind) ([]model.Address, error) {
	return u.addresses.ListByUser(ctx, userID, kind)
}

// SetAddresses attaches billing and shipping addresses to the user's open
// order, creating new address records where no saved one was selected.
func (u *CheckoutUseCase) SetAddresses(ctx context.Context, actor model.CartActor, userID int64, input SetAddressesInput) (*model.Order, error) {
	billingID, err := u.resolveAddress(ctx, userID, model.AddressBilling, input.SelectedBillingID, input.Billing)
	if err != nil {
		return nil, err
	}
	shippingID, err := u.resolveAddress(ctx, userID, model.AddressShipping, input.SelectedShippingID, input.Shipping)
	if err != nil {
		return nil, err
	}

	order, err := u.orders.OpenForActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := u.orders.SetAddresses(ctx, order.ID, billingID, shippingID); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, order.ID)
}

func (u *CheckoutUseCase) resolveAddress(ctx context.Context, userID int64, kind model.AddressKind, selectedID *int64, input AddressInput) (int64, error) {
	if selectedID != nil {
		address, err := u.addresses.GetByID(ctx, *selectedID)
		if err != nil {
			return 0, err
		}
		if address.UserID != userID || address.Kind != kind {
			return 0, domainErrors.ErrNotFound
		}
		return address.ID, nil
	}

	if !input.complete() {
		return 0, domainErrors.ErrInvalidAddress
	}
	created, err := u.addresses.Create(ctx, &model.Address{
		UserID:  userID,
		Line1:   input.Line1,
		Line2:   input.Line2,
		ZipCode: input.ZipCode,
		City:    input.City,
		Kind:    kind,
	})
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

// DeliveryOptions lists the available shipping tiers.
func (u *CheckoutUseCase) DeliveryOptions(ctx context.Context) ([]model.DeliveryOption, error) {
	return u.deliveries.List(ctx)
}

// SetDelivery attaches a delivery option to the actor's open order and
// snapshots its cost onto the order.
func (u *CheckoutUseCase) SetDelivery(ctx context.Context, actor model.CartActor, deliveryID int64) (*model.Order, error) {
	option, err := u.deliveries.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	order, err := u.orders.OpenForActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := u.orders.SetDelivery(ctx, order.ID, option.ID, option.Cost); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, order.ID)
}

// ConfirmPayment records a successful capture against the actor's open
// order and places it. Placement and the payment fact land in one atomic
// repository step. The confirmed amount must match the order's formatted
// total exactly; on mismatch nothing is recorded and the order stays
// open. The next cart touch starts a fresh open order.
func (u *CheckoutUseCase) ConfirmPayment(ctx context.Context, actor model.CartActor, input ConfirmPaymentInput) (*model.Payment, error) {
	order, err := u.orders.OpenForActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	if len(order.Items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	if input.Amount != order.Total() {
		return nil, domainErrors.ErrAmountMismatch
	}

	if err := order.Place(u.now()); err != nil {
		return nil, err
	}

	method := input.Method
	if method == "" {
		method = "paypal"
	}
	amount, err := model.NewMoney(order.RawTotal())
	if err != nil {
		return nil, err
	}
	return u.orders.PlaceWithPayment(ctx, order.ID, *order.PlacedAt, &model.Payment{
		OrderID:     order.ID,
		Method:      method,
		CaptureRef:  input.CaptureRef,
		Amount:      amount,
		RawResponse: input.RawPayload,
		Successful:  true,
		Status:      model.PaymentStatusPending,
	})
}

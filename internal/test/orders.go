package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/domain/model"
)

// OrderRepositoryStub keeps orders and their line items in-memory. It
// reproduces the open-cart resolution rules of the real storage layer:
// one open order per actor, guest carts adopted on authentication.
type OrderRepositoryStub struct {
	mu       sync.Mutex
	Orders   map[int64]*model.Order
	NextID   int64
	NextItem int64
	Err      error
	// Payments receives the payment fact recorded by PlaceWithPayment,
	// mirroring the shared database of the real repositories.
	Payments *PaymentRepositoryStub
}

// NewOrderRepositoryStub constructs an empty order stub.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), NextID: 1, NextItem: 1}
}

// SeedOpen stores an open order for the actor and returns its copy.
func (s *OrderRepositoryStub) SeedOpen(actor model.CartActor) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := &model.Order{
		ID:        s.NextID,
		UserID:    actor.UserID,
		CartToken: actor.Token,
		StartedAt: time.Now(),
	}
	s.NextID++
	s.Orders[order.ID] = order
	copied := cloneOrder(order)
	return &copied
}

// SeedPlaced stores an already placed order for the actor and returns
// its copy.
func (s *OrderRepositoryStub) SeedPlaced(actor model.CartActor) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	at := time.Now()
	order := &model.Order{
		ID:        s.NextID,
		UserID:    actor.UserID,
		CartToken: actor.Token,
		StartedAt: at,
		Placed:    true,
		PlacedAt:  &at,
	}
	s.NextID++
	s.Orders[order.ID] = order
	copied := cloneOrder(order)
	return &copied
}

// ItemCount reports how many line items the order currently holds.
func (s *OrderRepositoryStub) ItemCount(orderID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.Orders[orderID]; ok {
		return len(order.Items)
	}
	return 0
}

func (s *OrderRepositoryStub) OpenForActor(ctx context.Context, actor model.CartActor) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if actor.UserID != nil {
		for _, order := range s.ordered() {
			if order.Placed {
				continue
			}
			if order.UserID != nil && *order.UserID == *actor.UserID {
				copied := cloneOrder(order)
				return &copied, nil
			}
		}
		// Adopt the guest cart started before authentication.
		if actor.Token != "" {
			for _, order := range s.ordered() {
				if !order.Placed && order.UserID == nil && order.CartToken == actor.Token {
					uid := *actor.UserID
					order.UserID = &uid
					copied := cloneOrder(order)
					return &copied, nil
				}
			}
		}
	} else if actor.Token != "" {
		for _, order := range s.ordered() {
			if !order.Placed && order.UserID == nil && order.CartToken == actor.Token {
				copied := cloneOrder(order)
				return &copied, nil
			}
		}
	}

	order := &model.Order{
		ID:        s.NextID,
		CartToken: actor.Token,
		StartedAt: time.Now(),
	}
	if actor.UserID != nil {
		uid := *actor.UserID
		order.UserID = &uid
	}
	s.NextID++
	s.Orders[order.ID] = order
	copied := cloneOrder(order)
	return &copied, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.Orders[id]; ok {
		copied := cloneOrder(order)
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListPlacedByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, order := range s.ordered() {
		if order.Placed && order.UserID != nil && *order.UserID == userID {
			result = append(result, cloneOrder(order))
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListPlaced(ctx context.Context, limit int) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, order := range s.ordered() {
		if order.Placed {
			result = append(result, cloneOrder(order))
		}
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) AddItem(ctx context.Context, item *model.LineItem) (*model.LineItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[item.OrderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *item
	stored.ID = s.NextItem
	s.NextItem++
	stored.CreatedAt = time.Now()
	order.Items = append(order.Items, stored)
	copied := stored
	return &copied, nil
}

func (s *OrderRepositoryStub) GetItem(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	for _, item := range order.Items {
		if item.ID == itemID {
			copied := item
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.Orders {
		for i := range order.Items {
			if order.Items[i].ID == itemID {
				order.Items[i].Quantity = quantity
				return nil
			}
		}
	}
	return domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) RemoveItem(ctx context.Context, itemID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.Orders {
		for i := range order.Items {
			if order.Items[i].ID == itemID {
				order.Items = append(order.Items[:i], order.Items[i+1:]...)
				return nil
			}
		}
	}
	return domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) SetAddresses(ctx context.Context, orderID int64, billingID, shippingID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.BillingAddressID = &billingID
	order.ShippingAddressID = &shippingID
	return nil
}

func (s *OrderRepositoryStub) SetDelivery(ctx context.Context, orderID int64, deliveryID int64, cost model.Money) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.DeliveryID = &deliveryID
	order.DeliveryCost = &cost
	return nil
}

func (s *OrderRepositoryStub) PlaceWithPayment(ctx context.Context, orderID int64, at time.Time, payment *model.Payment) (*model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if order.Placed {
		return nil, domainErrors.ErrAlreadyPlaced
	}

	// Record the payment first: if that fails the order must stay open.
	var created *model.Payment
	if s.Payments != nil {
		var err error
		created, err = s.Payments.Create(ctx, payment)
		if err != nil {
			return nil, err
		}
	} else {
		copied := *payment
		created = &copied
	}

	order.Placed = true
	order.PlacedAt = &at
	return created, nil
}

func (s *OrderRepositoryStub) ordered() []*model.Order {
	ids := make([]int64, 0, len(s.Orders))
	for id := range s.Orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]*model.Order, 0, len(ids))
	for _, id := range ids {
		result = append(result, s.Orders[id])
	}
	return result
}

func cloneOrder(order *model.Order) model.Order {
	copied := *order
	copied.Items = append([]model.LineItem(nil), order.Items...)
	if order.UserID != nil {
		uid := *order.UserID
		copied.UserID = &uid
	}
	if order.PlacedAt != nil {
		at := *order.PlacedAt
		copied.PlacedAt = &at
	}
	if order.DeliveryCost != nil {
		cost := *order.DeliveryCost
		copied.DeliveryCost = &cost
	}
	return copied
}

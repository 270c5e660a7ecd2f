package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub stores catalog products in-memory. CategoryNames
// maps category IDs to names so List can honor the category filter.
type ProductRepositoryStub struct {
	Products      map[int64]*model.Product
	CategoryNames map[int64]string
	Next          int64
	Err           error
}

// NewProductRepositoryStub constructs an empty product stub.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Seed stores a product under the next identifier and returns it.
func (s *ProductRepositoryStub) Seed(product model.Product) *model.Product {
	if product.ID == 0 {
		product.ID = s.Next
		s.Next++
	} else if product.ID >= s.Next {
		s.Next = product.ID + 1
	}
	stored := product
	s.Products[stored.ID] = &stored
	return &stored
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Products {
		if existing.Slug == product.Slug {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *product
	stored.ID = s.Next
	s.Next++
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Products[stored.ID] = &stored
	return &stored, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[product.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *product
	stored.UpdatedAt = time.Now()
	s.Products[stored.ID] = &stored
	return nil
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, product := range s.Products {
		if product.Slug == slug {
			copied := *product
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, product := range s.Products {
		if !filter.IncludeInactive && !product.Active {
			continue
		}
		if filter.Category != "" && s.CategoryNames[product.CategoryID] != filter.Category {
			continue
		}
		result = append(result, *product)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// CategoryRepositoryStub serves a fixed category set.
type CategoryRepositoryStub struct {
	Categories []model.Category
	Err        error
}

func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Categories, nil
}

func (s *CategoryRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Categories {
		if c.ID == id {
			copied := c
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// DeliveryRepositoryStub serves a fixed set of delivery options.
type DeliveryRepositoryStub struct {
	Options []model.DeliveryOption
	Err     error
}

func (s *DeliveryRepositoryStub) List(ctx context.Context) ([]model.DeliveryOption, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Options, nil
}

func (s *DeliveryRepositoryStub) GetByID(ctx context.Context, id int64) (*model.DeliveryOption, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, option := range s.Options {
		if option.ID == id {
			copied := option
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// AddressRepositoryStub stores addresses in-memory.
type AddressRepositoryStub struct {
	Addresses map[int64]*model.Address
	Next      int64
	Err       error
}

// NewAddressRepositoryStub constructs an empty address stub.
func NewAddressRepositoryStub() *AddressRepositoryStub {
	return &AddressRepositoryStub{Addresses: make(map[int64]*model.Address), Next: 1}
}

func (s *AddressRepositoryStub) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *address
	stored.ID = s.Next
	s.Next++
	s.Addresses[stored.ID] = &stored
	return &stored, nil
}

func (s *AddressRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if address, ok := s.Addresses[id]; ok {
		copied := *address
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *AddressRepositoryStub) ListByUser(ctx context.Context, userID int64, kind model.AddressKind) ([]model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Address
	for _, address := range s.Addresses {
		if address.UserID == userID && address.Kind == kind {
			result = append(result, *address)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// PaymentRepositoryStub stores payment facts in-memory.
type PaymentRepositoryStub struct {
	mu       sync.Mutex
	Payments map[int64]*model.Payment
	Next     int64
	Err      error
}

// NewPaymentRepositoryStub constructs an empty payment stub.
func NewPaymentRepositoryStub() *PaymentRepositoryStub {
	return &PaymentRepositoryStub{Payments: make(map[int64]*model.Payment), Next: 1}
}

func (s *PaymentRepositoryStub) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *payment
	stored.ID = s.Next
	s.Next++
	stored.CreatedAt = time.Now()
	s.Payments[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *PaymentRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Payment
	for _, payment := range s.Payments {
		if payment.OrderID == orderID {
			result = append(result, *payment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *PaymentRepositoryStub) SelectBatchForVerification(ctx context.Context, limit int) ([]model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int64
	for id, payment := range s.Payments {
		if payment.Status == model.PaymentStatusPending || payment.Status == model.PaymentStatusChecking {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	var result []model.Payment
	for _, id := range ids {
		s.Payments[id].Status = model.PaymentStatusChecking
		result = append(result, *s.Payments[id])
	}
	return result, nil
}

func (s *PaymentRepositoryStub) UpdateVerification(ctx context.Context, paymentID int64, status model.PaymentStatus) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.Payments[paymentID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	payment.Status = status
	return nil
}

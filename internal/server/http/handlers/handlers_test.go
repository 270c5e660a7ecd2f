package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/domain/model"
	"storefront/internal/server/http/dto"
	"storefront/internal/server/http/middleware"
	testhelpers "storefront/internal/test/facades"
	"storefront/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// performRequest registers the handler under the route pattern and serves
// the target URL through it, so path parameters bind the same way they do
// in the real router.
func performRequest(t *testing.T, method, pattern, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, pattern, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asGuest(token string) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.CartTokenContextKey, token)
	}
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
	}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestCurrentActor(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(middleware.CartTokenContextKey, "cart-token")

	actor := CurrentActor(c)
	if actor.UserID != nil {
		t.Fatalf("expected anonymous actor, got user %d", *actor.UserID)
	}
	if actor.Token != "cart-token" {
		t.Fatalf("unexpected token %q", actor.Token)
	}

	c.Set(middleware.UserIDContextKey, int64(7))
	actor = CurrentActor(c)
	if actor.UserID == nil || *actor.UserID != 7 {
		t.Fatalf("expected user 7, got %+v", actor.UserID)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "user", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}
	foundCookie := false
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == "storefront_token" {
			foundCookie = true
		}
	}
	if !foundCookie {
		t.Fatal("expected auth cookie named storefront_token")
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "malformed body",
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "invalid credentials",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
				return "", domainErrors.ErrInvalidCredentials
			}},
			body:   mustJSON(t, dto.AuthRequest{Login: "user", Password: ""}),
			status: http.StatusBadRequest,
		},
		{
			name: "duplicate login",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
				return "", domainErrors.ErrAlreadyExists
			}},
			body:   mustJSON(t, dto.AuthRequest{Login: "user", Password: "pass"}),
			status: http.StatusConflict,
		},
		{
			name: "storage failure",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
				return "", errors.New("boom")
			}},
			body:   mustJSON(t, dto.AuthRequest{Login: "user", Password: "pass"}),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "user", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	facade := testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
		return "", domainErrors.ErrInvalidCredentials
	}}
	resp = performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(facade).Login, nil, body, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestCatalogHandlerCategories(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/categories", "/categories", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Categories, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var categories []dto.CategoryResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &categories); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Knitwear" {
		t.Fatalf("unexpected categories %+v", categories)
	}
}

func TestCatalogHandlerProducts(t *testing.T) {
	var gotCategory string
	facade := testhelpers.CatalogFacadeStub{ProductsFn: func(ctx context.Context, category string) ([]model.Product, error) {
		gotCategory = category
		return []model.Product{{ID: 1, Title: "Jumper", Slug: "jumper", Price: model.Money(4500), Stock: 3}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/products", "/products?category=knitwear", NewCatalogHandler(facade).Products, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotCategory != "knitwear" {
		t.Fatalf("expected category filter to reach facade, got %q", gotCategory)
	}

	var products []dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(products) != 1 || products[0].PriceDisplay != "45.00" {
		t.Fatalf("unexpected products %+v", products)
	}
}

func TestCatalogHandlerProductsUnknownCategory(t *testing.T) {
	facade := testhelpers.CatalogFacadeStub{ProductsFn: func(context.Context, string) ([]model.Product, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodGet, "/products", "/products?category=nope", NewCatalogHandler(facade).Products, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCatalogHandlerProductBySlug(t *testing.T) {
	var gotSlug string
	facade := testhelpers.CatalogFacadeStub{BySlugFn: func(ctx context.Context, slug string) (*model.Product, error) {
		gotSlug = slug
		return &model.Product{ID: 1, Title: "Jumper", Slug: slug, Price: model.Money(4500), Stock: 3, Active: true}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/products/:slug", "/products/jumper", NewCatalogHandler(facade).Product, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotSlug != "jumper" {
		t.Fatalf("expected slug to reach facade, got %q", gotSlug)
	}

	missing := testhelpers.CatalogFacadeStub{BySlugFn: func(context.Context, string) (*model.Product, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodGet, "/products/:slug", "/products/hidden", NewCatalogHandler(missing).Product, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for hidden product, got %d", resp.Code)
	}
}

func TestCartHandlerShow(t *testing.T) {
	facade := testhelpers.CartFacadeStub{CartFn: func(ctx context.Context, actor model.CartActor) (*model.Order, error) {
		if actor.Token != "cart-token" {
			t.Fatalf("expected cart token to reach facade, got %q", actor.Token)
		}
		return &model.Order{ID: 1, Items: []model.LineItem{{ID: 5, ProductID: 2, UnitPrice: model.Money(4500), Quantity: 2}}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/cart", "/cart", NewCartHandler(facade).Show, asGuest("cart-token"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var cart dto.CartResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if cart.SubtotalDisplay != "90.00" || cart.TotalDisplay != "90.00" {
		t.Fatalf("unexpected totals %+v", cart)
	}
}

func TestCartHandlerAdd(t *testing.T) {
	body := mustJSON(t, dto.AddItemRequest{ProductID: 2, Quantity: 3})
	resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", NewCartHandler(testhelpers.CartFacadeStub{}).Add, asGuest("cart-token"), body, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var item dto.LineItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if item.Quantity != 3 || item.TotalDisplay != "135.00" {
		t.Fatalf("unexpected line item %+v", item)
	}
}

func TestCartHandlerAddInsufficientStock(t *testing.T) {
	facade := testhelpers.CartFacadeStub{AddFn: func(context.Context, model.CartActor, int64, string, string, int) (*model.LineItem, error) {
		return nil, domainErrors.InsufficientStockError{Available: 2}
	}}
	body := mustJSON(t, dto.AddItemRequest{ProductID: 2, Quantity: 5})
	resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", NewCartHandler(facade).Add, asGuest("cart-token"), body, nil)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}

	var payload dto.InsufficientStockResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Available != 2 {
		t.Fatalf("expected available quantity 2, got %d", payload.Available)
	}
}

func TestCartHandlerAddFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "unknown variation", err: domainErrors.ErrInvalidVariation, status: http.StatusUnprocessableEntity},
		{name: "invalid quantity", err: domainErrors.ErrInvalidQuantity, status: http.StatusUnprocessableEntity},
		{name: "unknown product", err: domainErrors.ErrNotFound, status: http.StatusNotFound},
		{name: "storage failure", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.CartFacadeStub{AddFn: func(context.Context, model.CartActor, int64, string, string, int) (*model.LineItem, error) {
				return nil, tt.err
			}}
			body := mustJSON(t, dto.AddItemRequest{ProductID: 2, Quantity: 1})
			resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", NewCartHandler(facade).Add, asGuest("cart-token"), body, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestCartHandlerQuantityMutations(t *testing.T) {
	var increased, decreased int64
	facade := testhelpers.CartFacadeStub{
		IncreaseFn: func(ctx context.Context, actor model.CartActor, itemID int64) error {
			increased = itemID
			return nil
		},
		DecreaseFn: func(ctx context.Context, actor model.CartActor, itemID int64) error {
			decreased = itemID
			return nil
		},
	}
	handler := NewCartHandler(facade)

	resp := performRequest(t, http.MethodPost, "/cart/items/:id/increase", "/cart/items/5/increase", handler.Increase, asGuest("cart-token"), nil, nil)
	if resp.Code != http.StatusOK || increased != 5 {
		t.Fatalf("increase: status %d, item %d", resp.Code, increased)
	}

	resp = performRequest(t, http.MethodPost, "/cart/items/:id/decrease", "/cart/items/5/decrease", handler.Decrease, asGuest("cart-token"), nil, nil)
	if resp.Code != http.StatusOK || decreased != 5 {
		t.Fatalf("decrease: status %d, item %d", resp.Code, decreased)
	}

	resp = performRequest(t, http.MethodPost, "/cart/items/:id/increase", "/cart/items/abc/increase", handler.Increase, asGuest("cart-token"), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad item id, got %d", resp.Code)
	}
}

func TestCartHandlerRemove(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/cart/items/:id", "/cart/items/5", NewCartHandler(testhelpers.CartFacadeStub{}).Remove, asGuest("cart-token"), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	facade := testhelpers.CartFacadeStub{RemoveFn: func(context.Context, model.CartActor, int64) error {
		return domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodDelete, "/cart/items/:id", "/cart/items/9", NewCartHandler(facade).Remove, asGuest("cart-token"), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign item, got %d", resp.Code)
	}
}

func TestCheckoutHandlerAddresses(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/checkout/addresses", "/checkout/addresses", NewCheckoutHandler(testhelpers.CheckoutFacadeStub{}).Addresses, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload map[string][]dto.AddressResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload["billing"]) != 1 || len(payload["shipping"]) != 1 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestCheckoutHandlerSetAddresses(t *testing.T) {
	var gotInput usecase.SetAddressesInput
	facade := testhelpers.CheckoutFacadeStub{SetAddressesFn: func(ctx context.Context, actor model.CartActor, userID int64, input usecase.SetAddressesInput) (*model.Order, error) {
		gotInput = input
		return &model.Order{ID: 1}, nil
	}}
	billingID := int64(3)
	body := mustJSON(t, dto.SetAddressesRequest{
		BillingID: &billingID,
		Shipping:  dto.AddressPayload{Line1: "1 High St", Line2: "Flat 2", ZipCode: "N1 1AA", City: "London"},
	})
	resp := performRequest(t, http.MethodPost, "/checkout/addresses", "/checkout/addresses", NewCheckoutHandler(facade).SetAddresses, asUser(7), body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotInput.SelectedBillingID == nil || *gotInput.SelectedBillingID != 3 {
		t.Fatalf("expected saved billing id to reach facade, got %+v", gotInput.SelectedBillingID)
	}
	if gotInput.Shipping.City != "London" {
		t.Fatalf("expected new shipping address to reach facade, got %+v", gotInput.Shipping)
	}
}

func TestCheckoutHandlerSetAddressesIncomplete(t *testing.T) {
	facade := testhelpers.CheckoutFacadeStub{SetAddressesFn: func(context.Context, model.CartActor, int64, usecase.SetAddressesInput) (*model.Order, error) {
		return nil, domainErrors.ErrInvalidAddress
	}}
	body := mustJSON(t, dto.SetAddressesRequest{})
	resp := performRequest(t, http.MethodPost, "/checkout/addresses", "/checkout/addresses", NewCheckoutHandler(facade).SetAddresses, asUser(7), body, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCheckoutHandlerDeliveryOptions(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/checkout/delivery", "/checkout/delivery", NewCheckoutHandler(testhelpers.CheckoutFacadeStub{}).DeliveryOptions, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var options []dto.DeliveryOptionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &options); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(options) != 1 || options[0].CostDisplay != "5.00" {
		t.Fatalf("unexpected options %+v", options)
	}
}

func TestCheckoutHandlerSetDelivery(t *testing.T) {
	body := mustJSON(t, dto.SetDeliveryRequest{DeliveryID: 1})
	resp := performRequest(t, http.MethodPost, "/checkout/delivery", "/checkout/delivery", NewCheckoutHandler(testhelpers.CheckoutFacadeStub{}).SetDelivery, asUser(7), body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	facade := testhelpers.CheckoutFacadeStub{SetDeliveryFn: func(context.Context, model.CartActor, int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodPost, "/checkout/delivery", "/checkout/delivery", NewCheckoutHandler(facade).SetDelivery, asUser(7), body, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown option, got %d", resp.Code)
	}
}

func TestCheckoutHandlerConfirmPayment(t *testing.T) {
	body := mustJSON(t, dto.ConfirmPaymentRequest{Amount: "5.00", Method: "paypal", CaptureRef: "CAP-1"})
	resp := performRequest(t, http.MethodPost, "/checkout/payment", "/checkout/payment", NewCheckoutHandler(testhelpers.CheckoutFacadeStub{}).ConfirmPayment, asUser(7), body, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var payment dto.PaymentResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payment); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payment.Status != string(model.PaymentStatusPending) || payment.AmountDisplay != "5.00" {
		t.Fatalf("unexpected payment %+v", payment)
	}
}

func TestCheckoutHandlerConfirmPaymentFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "amount mismatch", err: domainErrors.ErrAmountMismatch, status: http.StatusUnprocessableEntity},
		{name: "malformed amount", err: domainErrors.ErrInvalidAmount, status: http.StatusBadRequest},
		{name: "empty cart", err: domainErrors.ErrEmptyOrder, status: http.StatusConflict},
		{name: "already placed", err: domainErrors.ErrAlreadyPlaced, status: http.StatusConflict},
		{name: "no open order", err: domainErrors.ErrNotFound, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.CheckoutFacadeStub{ConfirmFn: func(context.Context, model.CartActor, usecase.ConfirmPaymentInput) (*model.Payment, error) {
				return nil, tt.err
			}}
			body := mustJSON(t, dto.ConfirmPaymentRequest{Amount: "5.00", CaptureRef: "CAP-1"})
			resp := performRequest(t, http.MethodPost, "/checkout/payment", "/checkout/payment", NewCheckoutHandler(facade).ConfirmPayment, asUser(7), body, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders", "/orders", NewOrderHandler(testhelpers.OrderFacadeStub{}).List, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context, int64) ([]model.Order, error) {
		return nil, nil
	}}
	resp = performRequest(t, http.MethodGet, "/orders", "/orders", NewOrderHandler(facade).List, asUser(7), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for empty history, got %d", resp.Code)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{OrderPaymentsFn: func(ctx context.Context, userID, orderID int64) ([]model.Payment, error) {
		return []model.Payment{{ID: 4, OrderID: orderID, Method: "paypal", Amount: model.Money(800), Status: model.PaymentStatusVerified}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/3", NewOrderHandler(facade).Get, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if order.Reference != "ORDER-3" {
		t.Fatalf("unexpected reference %q", order.Reference)
	}
	if len(order.Payments) != 1 || order.Payments[0].AmountDisplay != "8.00" {
		t.Fatalf("expected payment history on order detail, got %+v", order.Payments)
	}

	missing := testhelpers.OrderFacadeStub{OrderFn: func(context.Context, int64, int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodGet, "/orders/:id", "/orders/99", NewOrderHandler(missing).Get, asUser(7), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign order, got %d", resp.Code)
	}
}

func TestStaffHandlerCreateProduct(t *testing.T) {
	body := mustJSON(t, dto.ProductPayload{Title: "Wool Jumper", Price: 4500, Stock: 3, Active: true, CategoryID: 1})
	resp := performRequest(t, http.MethodPost, "/staff/products", "/staff/products", NewStaffHandler(testhelpers.StaffFacadeStub{}).CreateProduct, asUser(1), body, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var product dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &product); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if product.Title != "Wool Jumper" {
		t.Fatalf("unexpected product %+v", product)
	}
}

func TestStaffHandlerCreateProductFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "blank title", err: domainErrors.ErrInvalidProduct, status: http.StatusBadRequest},
		{name: "negative price", err: domainErrors.ErrInvalidAmount, status: http.StatusBadRequest},
		{name: "duplicate slug", err: domainErrors.ErrAlreadyExists, status: http.StatusConflict},
		{name: "unknown category", err: domainErrors.ErrNotFound, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.StaffFacadeStub{CreateFn: func(context.Context, usecase.ProductInput) (*model.Product, error) {
				return nil, tt.err
			}}
			body := mustJSON(t, dto.ProductPayload{Title: "X"})
			resp := performRequest(t, http.MethodPost, "/staff/products", "/staff/products", NewStaffHandler(facade).CreateProduct, asUser(1), body, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestStaffHandlerUpdateAndDelete(t *testing.T) {
	var updatedID, deletedID int64
	facade := testhelpers.StaffFacadeStub{
		UpdateFn: func(ctx context.Context, id int64, input usecase.ProductInput) (*model.Product, error) {
			updatedID = id
			return &model.Product{ID: id, Title: input.Title}, nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	handler := NewStaffHandler(facade)

	body := mustJSON(t, dto.ProductPayload{Title: "Wool Jumper", Price: 4500})
	resp := performRequest(t, http.MethodPut, "/staff/products/:id", "/staff/products/2", handler.UpdateProduct, asUser(1), body, nil)
	if resp.Code != http.StatusOK || updatedID != 2 {
		t.Fatalf("update: status %d, id %d", resp.Code, updatedID)
	}

	resp = performRequest(t, http.MethodDelete, "/staff/products/:id", "/staff/products/2", handler.DeleteProduct, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent || deletedID != 2 {
		t.Fatalf("delete: status %d, id %d", resp.Code, deletedID)
	}

	resp = performRequest(t, http.MethodDelete, "/staff/products/:id", "/staff/products/abc", handler.DeleteProduct, asUser(1), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad id, got %d", resp.Code)
	}
}

func TestStaffHandlerOrders(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/staff/orders", "/staff/orders", NewStaffHandler(testhelpers.StaffFacadeStub{}).Orders, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/domain/model"
	"storefront/internal/server/http/dto"
	"storefront/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentActor builds the cart actor from the request context: the
// authenticated user if present, plus the anonymous cart token.
func CurrentActor(c *gin.Context) model.CartActor {
	actor := model.CartActor{}
	if id := CurrentUserID(c); id != 0 {
		actor.UserID = &id
	}
	if val, ok := c.Get(middleware.CartTokenContextKey); ok {
		actor.Token, _ = val.(string)
	}
	return actor
}

func toLineItemResponse(item model.LineItem) dto.LineItemResponse {
	return dto.LineItemResponse{
		ID:           item.ID,
		ProductID:    item.ProductID,
		Title:        item.ProductTitle,
		UnitPrice:    item.UnitPrice.Minor(),
		Quantity:     item.Quantity,
		Colour:       item.Colour,
		Size:         item.Size,
		Total:        item.RawTotal(),
		TotalDisplay: item.Total(),
	}
}

func toCartResponse(order model.Order) dto.CartResponse {
	items := make([]dto.LineItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, toLineItemResponse(item))
	}
	return dto.CartResponse{
		OrderID:         order.ID,
		Items:           items,
		Subtotal:        order.RawSubtotal(),
		SubtotalDisplay: order.Subtotal(),
		Total:           order.RawTotal(),
		TotalDisplay:    order.Total(),
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.LineItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, toLineItemResponse(item))
	}
	resp := dto.OrderResponse{
		ID:              order.ID,
		Reference:       order.Reference(),
		PlacedAt:        order.PlacedAt,
		Items:           items,
		Subtotal:        order.RawSubtotal(),
		SubtotalDisplay: order.Subtotal(),
		Total:           order.RawTotal(),
		TotalDisplay:    order.Total(),
	}
	if order.DeliveryCost != nil {
		cost := order.DeliveryCost.Minor()
		resp.DeliveryCost = &cost
	}
	return resp
}

func toProductResponse(product model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           product.ID,
		Title:        product.Title,
		Slug:         product.Slug,
		Description:  product.Description,
		Price:        product.Price.Minor(),
		PriceDisplay: product.Price.Format(),
		InStock:      product.InStock(),
		Colours:      product.Colours,
		Sizes:        product.Sizes,
		CategoryID:   product.CategoryID,
	}
}

func toPaymentResponse(payment model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		Reference:     payment.Reference(),
		Method:        payment.Method,
		Amount:        payment.Amount.Minor(),
		AmountDisplay: payment.Amount.Format(),
		Status:        string(payment.Status),
	}
}

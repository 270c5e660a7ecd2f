package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/server/http/dto"
)

// CartHandler manages the open cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Show handles GET /api/cart.
func (h *CartHandler) Show(c *gin.Context) {
	order, err := h.facade.Cart(c.Request.Context(), CurrentActor(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toCartResponse(*order))
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.AddToCart(c.Request.Context(), CurrentActor(c), req.ProductID, req.Colour, req.Size, req.Quantity)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toLineItemResponse(*item))
}

// Increase handles POST /api/cart/items/:id/increase.
func (h *CartHandler) Increase(c *gin.Context) {
	itemID, ok := h.itemID(c)
	if !ok {
		return
	}

	if err := h.facade.IncreaseCartItem(c.Request.Context(), CurrentActor(c), itemID); err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Decrease handles POST /api/cart/items/:id/decrease.
func (h *CartHandler) Decrease(c *gin.Context) {
	itemID, ok := h.itemID(c)
	if !ok {
		return
	}

	if err := h.facade.DecreaseCartItem(c.Request.Context(), CurrentActor(c), itemID); err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Remove handles DELETE /api/cart/items/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	itemID, ok := h.itemID(c)
	if !ok {
		return
	}

	if err := h.facade.RemoveCartItem(c.Request.Context(), CurrentActor(c), itemID); err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *CartHandler) writeMutationError(c *gin.Context, err error) {
	var stockErr domainErrors.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusUnprocessableEntity, dto.InsufficientStockResponse{
			Error:     stockErr.Error(),
			Available: stockErr.Available,
		})
	case errors.Is(err, domainErrors.ErrInvalidVariation), errors.Is(err, domainErrors.ErrInvalidQuantity):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

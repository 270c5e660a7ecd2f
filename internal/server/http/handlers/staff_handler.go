package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/server/http/dto"
	"storefront/internal/usecase"
)

// StaffHandler covers the back-office surface: placed order review and
// product management.
type StaffHandler struct {
	facade StaffFacade
}

// NewStaffHandler constructs StaffHandler.
func NewStaffHandler(facade StaffFacade) *StaffHandler {
	return &StaffHandler{facade: facade}
}

// Orders handles GET /api/staff/orders.
func (h *StaffHandler) Orders(c *gin.Context) {
	orders, err := h.facade.StaffOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}

	c.JSON(http.StatusOK, response)
}

// Products handles GET /api/staff/products, inactive products included.
func (h *StaffHandler) Products(c *gin.Context) {
	products, err := h.facade.StaffProducts(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}

	c.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/staff/products.
func (h *StaffHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), toProductInput(req))
	if err != nil {
		h.writeProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// UpdateProduct handles PUT /api/staff/products/:id.
func (h *StaffHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	var req dto.ProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), id, toProductInput(req))
	if err != nil {
		h.writeProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(*product))
}

// DeleteProduct handles DELETE /api/staff/products/:id.
func (h *StaffHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		h.writeProductError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *StaffHandler) productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *StaffHandler) writeProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidProduct),
		errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrInvalidQuantity):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toProductInput(payload dto.ProductPayload) usecase.ProductInput {
	return usecase.ProductInput{
		Title:       payload.Title,
		Slug:        payload.Slug,
		Description: payload.Description,
		PriceMinor:  payload.Price,
		Stock:       payload.Stock,
		Active:      payload.Active,
		Colours:     payload.Colours,
		Sizes:       payload.Sizes,
		CategoryID:  payload.CategoryID,
	}
}

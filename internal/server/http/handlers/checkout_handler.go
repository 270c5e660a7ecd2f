package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/domain/model"
	"storefront/internal/server/http/dto"
	"storefront/internal/usecase"
)

// CheckoutHandler walks an authenticated customer through addresses,
// delivery selection and payment confirmation.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Addresses handles GET /api/checkout/addresses.
func (h *CheckoutHandler) Addresses(c *gin.Context) {
	ctx := c.Request.Context()
	userID := CurrentUserID(c)

	billing, err := h.facade.SavedAddresses(ctx, userID, model.AddressBilling)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	shipping, err := h.facade.SavedAddresses(ctx, userID, model.AddressShipping)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"billing":  toAddressResponses(billing),
		"shipping": toAddressResponses(shipping),
	})
}

// SetAddresses handles POST /api/checkout/addresses.
func (h *CheckoutHandler) SetAddresses(c *gin.Context) {
	var req dto.SetAddressesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	input := usecase.SetAddressesInput{
		SelectedBillingID:  req.BillingID,
		SelectedShippingID: req.ShippingID,
		Billing:            toAddressInput(req.Billing),
		Shipping:           toAddressInput(req.Shipping),
	}

	order, err := h.facade.SetAddresses(c.Request.Context(), CurrentActor(c), CurrentUserID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAddress):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toCartResponse(*order))
}

// DeliveryOptions handles GET /api/checkout/delivery.
func (h *CheckoutHandler) DeliveryOptions(c *gin.Context) {
	options, err := h.facade.DeliveryOptions(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.DeliveryOptionResponse, 0, len(options))
	for _, option := range options {
		response = append(response, dto.DeliveryOptionResponse{
			ID:          option.ID,
			Name:        option.Name,
			Cost:        option.Cost.Minor(),
			CostDisplay: option.Cost.Format(),
		})
	}

	c.JSON(http.StatusOK, response)
}

// SetDelivery handles POST /api/checkout/delivery.
func (h *CheckoutHandler) SetDelivery(c *gin.Context) {
	var req dto.SetDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.SetDelivery(c.Request.Context(), CurrentActor(c), req.DeliveryID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toCartResponse(*order))
}

// ConfirmPayment handles POST /api/checkout/payment.
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	input := usecase.ConfirmPaymentInput{
		Amount:     req.Amount,
		Method:     req.Method,
		CaptureRef: req.CaptureRef,
		RawPayload: req.RawPayload,
	}

	payment, err := h.facade.ConfirmPayment(c.Request.Context(), CurrentActor(c), input)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAmountMismatch):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrEmptyOrder), errors.Is(err, domainErrors.ErrAlreadyPlaced):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toPaymentResponse(*payment))
}

func toAddressInput(payload dto.AddressPayload) usecase.AddressInput {
	return usecase.AddressInput{
		Line1:   payload.Line1,
		Line2:   payload.Line2,
		ZipCode: payload.ZipCode,
		City:    payload.City,
	}
}

func toAddressResponses(addresses []model.Address) []dto.AddressResponse {
	response := make([]dto.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		response = append(response, dto.AddressResponse{
			ID:      address.ID,
			Line1:   address.Line1,
			Line2:   address.Line2,
			ZipCode: address.ZipCode,
			City:    address.City,
		})
	}
	return response
}

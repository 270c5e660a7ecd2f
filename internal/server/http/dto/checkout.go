package dto

// AddressPayload carries one address entered at checkout.
type AddressPayload struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	ZipCode string `json:"zip_code"`
	City    string `json:"city"`
}

// SetAddressesRequest selects saved addresses or supplies new ones.
type SetAddressesRequest struct {
	BillingID  *int64         `json:"billing_id,omitempty"`
	ShippingID *int64         `json:"shipping_id,omitempty"`
	Billing    AddressPayload `json:"billing"`
	Shipping   AddressPayload `json:"shipping"`
}

// AddressResponse describes a saved address.
type AddressResponse struct {
	ID      int64  `json:"id"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	ZipCode string `json:"zip_code"`
	City    string `json:"city"`
}

// DeliveryOptionResponse describes one shipping tier.
type DeliveryOptionResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Cost        int64  `json:"cost"`
	CostDisplay string `json:"cost_display"`
}

// SetDeliveryRequest attaches a shipping tier to the open order.
type SetDeliveryRequest struct {
	DeliveryID int64 `json:"delivery_id"`
}

// ConfirmPaymentRequest is the capture confirmation forwarded from the
// provider's client-side flow. Amount is the formatted decimal total.
type ConfirmPaymentRequest struct {
	Amount     string `json:"amount"`
	Method     string `json:"method"`
	CaptureRef string `json:"capture_ref"`
	RawPayload string `json:"raw_payload"`
}

// PaymentResponse describes a recorded payment.
type PaymentResponse struct {
	ID            int64  `json:"id"`
	OrderID       int64  `json:"order_id"`
	Reference     string `json:"reference"`
	Method        string `json:"method"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	Status        string `json:"status"`
}

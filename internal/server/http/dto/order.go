package dto

import "time"

// OrderResponse describes a placed order.
type OrderResponse struct {
	ID              int64              `json:"id"`
	Reference       string             `json:"reference"`
	PlacedAt        *time.Time         `json:"placed_at,omitempty"`
	Items           []LineItemResponse `json:"items"`
	Subtotal        int64              `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotal_display"`
	DeliveryCost    *int64             `json:"delivery_cost,omitempty"`
	Total           int64              `json:"total"`
	TotalDisplay    string             `json:"total_display"`
	Payments        []PaymentResponse  `json:"payments,omitempty"`
}

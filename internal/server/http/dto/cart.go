package dto

// AddItemRequest describes the add-to-cart payload.
type AddItemRequest struct {
	ProductID int64  `json:"product_id"`
	Colour    string `json:"colour"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// LineItemResponse describes one cart line.
type LineItemResponse struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	Title        string `json:"title"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	Colour       string `json:"colour,omitempty"`
	Size         string `json:"size,omitempty"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}

// CartResponse describes the open cart with its running totals.
type CartResponse struct {
	OrderID         int64              `json:"order_id"`
	Items           []LineItemResponse `json:"items"`
	Subtotal        int64              `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotal_display"`
	Total           int64              `json:"total"`
	TotalDisplay    string             `json:"total_display"`
}

// InsufficientStockResponse reports how many units remain available.
type InsufficientStockResponse struct {
	Error     string `json:"error"`
	Available int    `json:"available"`
}

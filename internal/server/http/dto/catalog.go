package dto

// CategoryResponse describes a catalog category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductResponse describes a catalog product. Price carries minor units;
// PriceDisplay is the formatted decimal string shown to customers.
type ProductResponse struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description,omitempty"`
	Price        int64    `json:"price"`
	PriceDisplay string   `json:"price_display"`
	InStock      bool     `json:"in_stock"`
	Colours      []string `json:"colours,omitempty"`
	Sizes        []string `json:"sizes,omitempty"`
	CategoryID   int64    `json:"category_id"`
}

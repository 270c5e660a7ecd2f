package dto

// ProductPayload carries the staff product form.
type ProductPayload struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Stock       int      `json:"stock"`
	Active      bool     `json:"active"`
	Colours     []string `json:"colours"`
	Sizes       []string `json:"sizes"`
	CategoryID  int64    `json:"category_id"`
}

package model

import "time"

// Category groups products in the catalog.
type Category struct {
	ID   int64
	Name string
}

// Product is a catalog entry. Price is stored in minor units; Colours and
// Sizes list the variations the product is offered in.
type Product struct {
	ID          int64
	Title       string
	Slug        string
	Description string
	Price       Money
	Stock       int
	Active      bool
	Colours     []string
	Sizes       []string
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// HasColour reports whether the given colour is a valid selection: one of
// the offered colours, or empty when the product has no colour variations.
func (p Product) HasColour(name string) bool {
	if name == "" {
		return len(p.Colours) == 0
	}
	for _, c := range p.Colours {
		if c == name {
			return true
		}
	}
	return false
}

// HasSize reports whether the given size is a valid selection: one of the
// offered sizes, or empty when the product has no size variations.
func (p Product) HasSize(name string) bool {
	if name == "" {
		return len(p.Sizes) == 0
	}
	for _, s := range p.Sizes {
		if s == name {
			return true
		}
	}
	return false
}

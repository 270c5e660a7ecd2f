package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidVariation  = errors.New("variation not offered by product")
	ErrAlreadyPlaced     = errors.New("order already placed")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrAmountMismatch    = errors.New("payment amount does not match order total")
	ErrInvalidAddress    = errors.New("incomplete address")
	ErrInvalidProduct    = errors.New("invalid product")
)

// InsufficientStockError carries the quantity still available so the
// presentation layer can report it to the customer.
type InsufficientStockError struct {
	Available int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Available)
}

// Is makes the typed error match ErrInsufficientStock under errors.Is.
func (e InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

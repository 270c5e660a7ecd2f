package model

import (
	"fmt"

	domainErrors "storefront/internal/domain/errors"
)

// Money is an exact amount of currency counted in minor units (grosze).
// It is never negative.
type Money int64

// NewMoney constructs Money from a minor-unit amount.
func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return 0, domainErrors.ErrInvalidAmount
	}
	return Money(minor), nil
}

// Minor returns the raw minor-unit amount.
func (m Money) Minor() int64 {
	return int64(m)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Format renders the amount divided by 100 with exactly two decimal places.
func (m Money) Format() string {
	return fmt.Sprintf("%d.%02d", int64(m)/100, int64(m)%100)
}

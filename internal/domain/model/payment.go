package model

import (
	"fmt"
	"time"
)

// PaymentStatus describes the gateway verification lifecycle of a
// recorded payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusChecking PaymentStatus = "CHECKING"
	PaymentStatusVerified PaymentStatus = "VERIFIED"
	PaymentStatusFailed   PaymentStatus = "FAILED"
)

// Payment records a confirmed capture against a placed order: the amount,
// the method tag, the raw gateway payload, and the verification state.
type Payment struct {
	ID          int64
	OrderID     int64
	Method      string
	CaptureRef  string
	Amount      Money
	RawResponse string
	Successful  bool
	Status      PaymentStatus
	CreatedAt   time.Time
}

// Reference returns the human-facing payment reference.
func (p Payment) Reference() string {
	return fmt.Sprintf("PAYMENT-ORDER-%d-%d", p.OrderID, p.ID)
}

package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// PaymentRepository describes persistence operations for payment facts.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error)
	// SelectBatchForVerification claims up to limit payments awaiting
	// gateway verification and moves them to CHECKING.
	SelectBatchForVerification(ctx context.Context, limit int) ([]model.Payment, error)
	UpdateVerification(ctx context.Context, paymentID int64, status model.PaymentStatus) error
}

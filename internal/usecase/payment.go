package usecase

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/domain/repository"
)

// PaymentUseCase drives gateway verification of recorded payments.
type PaymentUseCase struct {
	payments repository.PaymentRepository
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(payments repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{payments: payments}
}

// SelectBatch claims up to limit payments awaiting verification.
func (u *PaymentUseCase) SelectBatch(ctx context.Context, limit int) ([]model.Payment, error) {
	return u.payments.SelectBatchForVerification(ctx, limit)
}

// Resolve records the verification outcome for a payment.
func (u *PaymentUseCase) Resolve(ctx context.Context, paymentID int64, status model.PaymentStatus) error {
	return u.payments.UpdateVerification(ctx, paymentID, status)
}

// History lists all payments recorded against an order.
func (u *PaymentUseCase) History(ctx context.Context, orderID int64) ([]model.Payment, error) {
	return u.payments.ListByOrder(ctx, orderID)
}

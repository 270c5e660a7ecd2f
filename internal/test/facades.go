package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"storefront/internal/domain/model"
	pkgAuth "storefront/internal/pkg/auth"
)

// PaymentResolveCall stores information about ResolvePayment invocations.
type PaymentResolveCall struct {
	PaymentID int64
	Status    model.PaymentStatus
}

// VerifierFacadeStub mimics worker interactions with the storefront facade.
type VerifierFacadeStub struct {
	Payments          [][]model.Payment
	PaymentsFn        func(context.Context, int) ([]model.Payment, error)
	LookupFn          func(context.Context, string) (*model.Capture, error)
	ResolveFn         func(context.Context, int64, model.PaymentStatus) error
	Resolves          []PaymentResolveCall
	mu                sync.Mutex
	paymentsCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *VerifierFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *VerifierFacadeStub) Unlock() { s.mu.Unlock() }

// PaymentsForVerification returns batches from configured queue.
func (s *VerifierFacadeStub) PaymentsForVerification(ctx context.Context, limit int) ([]model.Payment, error) {
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.paymentsCallCount, 1)
	if int(call) <= len(s.Payments) {
		return s.Payments[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// LookupCapture returns configured capture data.
func (s *VerifierFacadeStub) LookupCapture(ctx context.Context, captureRef string) (*model.Capture, error) {
	if s.LookupFn != nil {
		return s.LookupFn(ctx, captureRef)
	}
	return &model.Capture{Reference: captureRef, Status: model.CaptureStatusCompleted}, nil
}

// ResolvePayment records resolution requests.
func (s *VerifierFacadeStub) ResolvePayment(ctx context.Context, paymentID int64, status model.PaymentStatus) error {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, paymentID, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Resolves = append(s.Resolves, PaymentResolveCall{PaymentID: paymentID, Status: status})
	return nil
}

// TokenParserStub validates tokens with configurable claims.
type TokenParserStub struct {
	Claims pkgAuth.Claims
	Err    error
}

// ParseToken returns configured claims or error.
func (s TokenParserStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.Err != nil {
		return pkgAuth.Claims{}, s.Err
	}
	return s.Claims, nil
}

// CaptureProviderStub fetches capture information for tests.
type CaptureProviderStub struct {
	FetchFn func(context.Context, string) (*model.Capture, error)
	Capture *model.Capture
	Err     error
}

// Fetch returns configured response or default completed status.
func (s CaptureProviderStub) Fetch(ctx context.Context, captureRef string) (*model.Capture, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, captureRef)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Capture != nil {
		return s.Capture, nil
	}
	return &model.Capture{Reference: captureRef, Status: model.CaptureStatusCompleted}, nil
}

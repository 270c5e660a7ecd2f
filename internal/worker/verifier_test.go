package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/adapter/paygate"
	"storefront/internal/domain/model"
	testhelpers "storefront/internal/test"
)

func TestNewPaymentVerifierDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	verifier := NewPaymentVerifier(&testhelpers.VerifierFacadeStub{}, time.Second, 0, 0, logger)
	if verifier.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", verifier.batchSize)
	}
	if verifier.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", verifier.workers)
	}
}

func TestPaymentVerifierVerifiesPayments(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.VerifierFacadeStub{
		Payments: [][]model.Payment{{{ID: 1, CaptureRef: "CAP-1", Amount: model.Money(800), Status: model.PaymentStatusChecking}}},
		LookupFn: func(ctx context.Context, ref string) (*model.Capture, error) {
			return &model.Capture{Reference: ref, Status: model.CaptureStatusCompleted, AmountMinor: 800}, nil
		},
	}
	verifier := NewPaymentVerifier(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	verifier.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		resolved := len(facade.Resolves) > 0
		facade.Unlock()
		if resolved {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for payment verification")
		case <-time.After(10 * time.Millisecond):
		}
	}

	verifier.Stop()
	facade.Lock()
	defer facade.Unlock()
	if facade.Resolves[0].Status != model.PaymentStatusVerified {
		t.Fatalf("expected verified status, got %v", facade.Resolves[0].Status)
	}
}

func TestPaymentVerifierFailsOnAmountMismatch(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.VerifierFacadeStub{
		Payments: [][]model.Payment{{{ID: 1, CaptureRef: "CAP-1", Amount: model.Money(800)}}},
		LookupFn: func(ctx context.Context, ref string) (*model.Capture, error) {
			return &model.Capture{Reference: ref, Status: model.CaptureStatusCompleted, AmountMinor: 799}, nil
		},
	}
	verifier := NewPaymentVerifier(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	verifier.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		resolved := len(facade.Resolves) > 0
		facade.Unlock()
		if resolved {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for payment resolution")
		case <-time.After(10 * time.Millisecond):
		}
	}

	verifier.Stop()
	facade.Lock()
	defer facade.Unlock()
	if facade.Resolves[0].Status != model.PaymentStatusFailed {
		t.Fatalf("expected failed status, got %v", facade.Resolves[0].Status)
	}
}

func TestPaymentVerifierFailsUnknownCapture(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.VerifierFacadeStub{
		Payments: [][]model.Payment{{{ID: 7, CaptureRef: "CAP-MISSING", Amount: model.Money(100)}}},
		LookupFn: func(context.Context, string) (*model.Capture, error) {
			return nil, paygate.ErrCaptureNotFound
		},
	}
	verifier := NewPaymentVerifier(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	verifier.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		resolved := len(facade.Resolves) > 0
		facade.Unlock()
		if resolved {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for payment resolution")
		case <-time.After(10 * time.Millisecond):
		}
	}

	verifier.Stop()
	facade.Lock()
	defer facade.Unlock()
	if facade.Resolves[0].PaymentID != 7 || facade.Resolves[0].Status != model.PaymentStatusFailed {
		t.Fatalf("expected payment 7 failed, got %+v", facade.Resolves[0])
	}
}

func TestPaymentVerifierLeavesPendingCaptures(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	looked := int32(0)
	facade := &testhelpers.VerifierFacadeStub{
		Payments: [][]model.Payment{{{ID: 1, CaptureRef: "CAP-1", Amount: model.Money(800)}}},
		LookupFn: func(ctx context.Context, ref string) (*model.Capture, error) {
			atomic.AddInt32(&looked, 1)
			return &model.Capture{Reference: ref, Status: model.CaptureStatusPending}, nil
		},
	}
	verifier := NewPaymentVerifier(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	verifier.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for atomic.LoadInt32(&looked) == 0 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for capture lookup")
		case <-time.After(10 * time.Millisecond):
		}
	}

	verifier.Stop()
	facade.Lock()
	defer facade.Unlock()
	if len(facade.Resolves) != 0 {
		t.Fatalf("expected pending capture to stay unresolved, got %+v", facade.Resolves)
	}
}

func TestPaymentVerifierHandlesRateLimiting(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &testhelpers.VerifierFacadeStub{
		Payments: [][]model.Payment{
			{{ID: 1, CaptureRef: "CAP-1", Amount: model.Money(800)}},
			{{ID: 1, CaptureRef: "CAP-1", Amount: model.Money(800)}},
		},
		LookupFn: func(ctx context.Context, ref string) (*model.Capture, error) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return nil, paygate.TooManyRequestsError{RetryAfter: 10 * time.Millisecond}
			}
			return &model.Capture{Reference: ref, Status: model.CaptureStatusCompleted, AmountMinor: 800}, nil
		},
	}

	verifier := NewPaymentVerifier(facade, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	verifier.Start(ctx)

	deadline := time.After(time.Second)
	for {
		facade.Lock()
		if len(facade.Resolves) > 0 {
			facade.Unlock()
			break
		}
		facade.Unlock()
		select {
		case <-deadline:
			t.Fatal("timeout waiting for retry")
		case <-time.After(10 * time.Millisecond):
		}
	}
	verifier.Stop()
}

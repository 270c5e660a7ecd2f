package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/adapter/paygate"
	"storefront/internal/domain/model"
)

// PaymentsFacade exposes the subset of application functionality required
// by the verifier.
type PaymentsFacade interface {
	PaymentsForVerification(ctx context.Context, limit int) ([]model.Payment, error)
	LookupCapture(ctx context.Context, captureRef string) (*model.Capture, error)
	ResolvePayment(ctx context.Context, paymentID int64, status model.PaymentStatus) error
}

// PaymentVerifier polls the payment gateway and settles recorded payments
// concurrently: a capture reported complete for the right amount verifies
// the payment, anything declined or unknown fails it.
type PaymentVerifier struct {
	facade       PaymentsFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Payment
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPaymentVerifier constructs the verifier worker pool.
func NewPaymentVerifier(facade PaymentsFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *PaymentVerifier {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PaymentVerifier{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Payment, batchSize*workers),
	}
}

// Start launches background verification.
func (v *PaymentVerifier) Start(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel

	for i := 0; i < v.workers; i++ {
		v.wg.Add(1)
		go v.worker(runCtx)
	}

	v.wg.Add(1)
	go v.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (v *PaymentVerifier) Stop() {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.mu.Unlock()

	v.wg.Wait()
}

func (v *PaymentVerifier) dispatch(ctx context.Context) {
	defer v.wg.Done()
	defer close(v.jobs)
	ticker := time.NewTicker(v.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.fetchAndDispatch(ctx)
		}
	}
}

func (v *PaymentVerifier) fetchAndDispatch(ctx context.Context) {
	payments, err := v.facade.PaymentsForVerification(ctx, v.batchSize)
	if err != nil {
		v.logger.Error("fetch payments for verification failed", slog.String("error", err.Error()))
		return
	}
	for _, payment := range payments {
		select {
		case <-ctx.Done():
			return
		case v.jobs <- payment:
		}
	}
}

func (v *PaymentVerifier) worker(ctx context.Context) {
	defer v.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case payment, ok := <-v.jobs:
			if !ok {
				return
			}
			v.handlePayment(ctx, payment)
		}
	}
}

func (v *PaymentVerifier) handlePayment(ctx context.Context, payment model.Payment) {
	capture, err := v.facade.LookupCapture(ctx, payment.CaptureRef)
	if err != nil {
		switch e := err.(type) {
		case paygate.TooManyRequestsError:
			v.logger.Warn("gateway rate limited", slog.Duration("retry_after", e.RetryAfter))
			time.Sleep(e.RetryAfter)
		default:
			if errors.Is(err, paygate.ErrCaptureNotFound) {
				v.resolve(ctx, payment, model.PaymentStatusFailed)
				return
			}
			v.logger.Error("capture lookup failed", slog.String("capture", payment.CaptureRef), slog.String("error", err.Error()))
		}
		return
	}

	switch capture.Status {
	case model.CaptureStatusCompleted:
		if capture.AmountMinor != payment.Amount.Minor() {
			v.logger.Warn("capture amount mismatch",
				slog.String("capture", payment.CaptureRef),
				slog.Int64("expected", payment.Amount.Minor()),
				slog.Int64("actual", capture.AmountMinor))
			v.resolve(ctx, payment, model.PaymentStatusFailed)
			return
		}
		v.resolve(ctx, payment, model.PaymentStatusVerified)
	case model.CaptureStatusDeclined, model.CaptureStatusRefunded:
		v.resolve(ctx, payment, model.PaymentStatusFailed)
	case model.CaptureStatusPending:
		// Left in CHECKING; a later batch picks it up again.
	default:
		v.logger.Warn("unknown capture status", slog.String("capture", payment.CaptureRef), slog.String("status", string(capture.Status)))
	}
}

func (v *PaymentVerifier) resolve(ctx context.Context, payment model.Payment, status model.PaymentStatus) {
	if err := v.facade.ResolvePayment(ctx, payment.ID, status); err != nil {
		v.logger.Error("resolve payment failed", slog.Int64("payment", payment.ID), slog.String("error", err.Error()))
	}
}

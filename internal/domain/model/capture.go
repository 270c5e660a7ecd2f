package model

// CaptureStatus describes a capture's state as reported by the payment
// gateway.
type CaptureStatus string

const (
	CaptureStatusCompleted CaptureStatus = "COMPLETED"
	CaptureStatusPending   CaptureStatus = "PENDING"
	CaptureStatusDeclined  CaptureStatus = "DECLINED"
	CaptureStatusRefunded  CaptureStatus = "REFUNDED"
)

// Capture is the gateway's record of a captured payment.
type Capture struct {
	Reference   string
	Status      CaptureStatus
	AmountMinor int64
}

package domain

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// paymentTransitions is the closed transition table for payment statuses.
// success and failed are terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentSuccess, PaymentFailed},
	PaymentSuccess: {},
	PaymentFailed:  {},
}

// CanTransition reports whether a payment may move from one status to another.
func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	for _, next := range paymentTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s PaymentStatus) Terminal() bool {
	return len(paymentTransitions[s]) == 0
}

type PaymentMethod string

const (
	MethodUPI  PaymentMethod = "upi"
	MethodCard PaymentMethod = "card"
)

// Payment is an attempt to settle an Order. Only the card network and the
// last four digits are ever retained; the PAN and CVV never reach storage.
type Payment struct {
	ID               string        `json:"id"`
	OrderID          string        `json:"order_id"`
	MerchantID       string        `json:"merchant_id"`
	Amount           int64         `json:"amount"`
	Currency         string        `json:"currency"`
	Method           PaymentMethod `json:"method"`
	Status           PaymentStatus `json:"status"`
	VPA              string        `json:"vpa,omitempty"`
	CardNetwork      string        `json:"card_network,omitempty"`
	CardLast4        string        `json:"card_last4,omitempty"`
	ErrorCode        string        `json:"error_code,omitempty"`
	ErrorDescription string        `json:"error_description,omitempty"`
	Captured         bool          `json:"captured"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// MerchantStats aggregates a merchant's payment activity for the dashboard.
type MerchantStats struct {
	TotalCount    int64 `json:"count"`
	SuccessCount  int64 `json:"success_count"`
	SuccessAmount int64 `json:"amount"`
}

type PaymentRepository interface {
	CreatePayment(payment *Payment) error
	GetPaymentByID(paymentID string) (*Payment, error)
	// UpdatePaymentStatus resolves a payment to its terminal status together
	// with the failure details, bumping updated_at.
	UpdatePaymentStatus(paymentID string, status PaymentStatus, errorCode, errorDescription string) error
	// SetCaptured flips the captured flag on a payment owned by the merchant.
	// Returns ErrPaymentNotFound when no row matches.
	SetCaptured(paymentID, merchantID string) error
	GetPaymentsByMerchantID(merchantID string) ([]*Payment, error)
	GetMerchantStats(merchantID string) (*MerchantStats, error)
}

package domain

import "time"

type RefundStatus string

const (
	RefundPending   RefundStatus = "pending"
	RefundProcessed RefundStatus = "processed"
)

type Refund struct {
	ID          string       `json:"id"`
	PaymentID   string       `json:"payment_id"`
	MerchantID  string       `json:"merchant_id"`
	Amount      int64        `json:"amount"`
	Reason      string       `json:"reason,omitempty"`
	Status      RefundStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	ProcessedAt *time.Time   `json:"processed_at,omitempty"`
}

type RefundRepository interface {
	CreateRefund(refund *Refund) error
	GetRefundByID(refundID string) (*Refund, error)
	// SumAmountByPaymentID returns the total amount already claimed by
	// refunds of the payment, regardless of their processing status.
	SumAmountByPaymentID(paymentID string) (int64, error)
	MarkProcessed(refundID string, processedAt time.Time) error
	GetRefundsByMerchantID(merchantID string) ([]*Refund, error)
}

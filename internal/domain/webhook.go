package domain

import (
	"encoding/json"
	"time"
)

const (
	EventPaymentSuccess  = "payment.success"
	EventPaymentFailed   = "payment.failed"
	EventRefundProcessed = "refund.processed"
)

type WebhookLogStatus string

const (
	WebhookLogPending WebhookLogStatus = "pending"
	WebhookLogSuccess WebhookLogStatus = "success"
)

// WebhookEvent is the JSON body POSTed to the merchant's callback URL.
// The signature covers the exact serialized bytes of this structure.
type WebhookEvent struct {
	Event     string           `json:"event"`
	Timestamp int64            `json:"timestamp"`
	Data      WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	Payment *Payment `json:"payment,omitempty"`
	Refund  *Refund  `json:"refund,omitempty"`
}

// WebhookLog is one delivery attempt. Rows are append-only; the newest row
// for a payload is the delivery's current state.
type WebhookLog struct {
	ID            string           `json:"id"`
	MerchantID    string           `json:"merchant_id"`
	Event         string           `json:"event"`
	Payload       json.RawMessage  `json:"payload"`
	Status        WebhookLogStatus `json:"status"`
	Attempts      int              `json:"attempts"`
	LastAttemptAt time.Time        `json:"last_attempt_at"`
	ResponseCode  int              `json:"response_code"`
	ResponseBody  string           `json:"response_body,omitempty"`
}

type WebhookLogRepository interface {
	Append(log *WebhookLog) error
	GetWebhookLogByID(logID string) (*WebhookLog, error)
	GetWebhookLogsByMerchantID(merchantID string) ([]*WebhookLog, error)
}

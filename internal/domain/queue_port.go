package domain

import "encoding/json"

// Queue names. Each lifecycle stage gets its own named queue so retry
// pressure on webhooks never starves payment processing.
const (
	QueuePaymentProcessing = "payment-processing"
	QueueRefundProcessing  = "refund-processing"
	QueueWebhookDelivery   = "webhook-delivery"
)

type PaymentTask struct {
	PaymentID string `json:"payment_id"`
	Method    string `json:"method"`
}

type RefundTask struct {
	RefundID string `json:"refund_id"`
}

// WebhookTask carries the exact payload bytes to deliver. Keeping the bytes
// opaque here means re-marshalling the task never perturbs the signed body.
type WebhookTask struct {
	MerchantID string          `json:"merchant_id"`
	Event      string          `json:"event"`
	Payload    json.RawMessage `json:"payload"`
}

type QueueStats struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}

// TaskQueue is the durable at-least-once work distribution port. Enqueues
// must be visible before the synchronous creation paths return.
type TaskQueue interface {
	EnqueuePaymentProcessing(task PaymentTask) error
	EnqueueRefundProcessing(task RefundTask) error
	EnqueueWebhookDelivery(task WebhookTask) error
	GetQueueStats(queue string) (*QueueStats, error)
}

package workers_test

import (
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestMetrics() *metrics.GatewayMetrics {
	return metrics.NewGatewayMetrics(prometheus.NewRegistry())
}

type fakePaymentRepo struct {
	payments    map[string]*domain.Payment
	updateCalls int
}

func (r *fakePaymentRepo) CreatePayment(payment *domain.Payment) error {
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakePaymentRepo) GetPaymentByID(paymentID string) (*domain.Payment, error) {
	payment, ok := r.payments[paymentID]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	copied := *payment
	return &copied, nil
}

func (r *fakePaymentRepo) UpdatePaymentStatus(paymentID string, status domain.PaymentStatus, errorCode, errorDescription string) error {
	r.updateCalls++
	payment, ok := r.payments[paymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	payment.Status = status
	payment.ErrorCode = errorCode
	payment.ErrorDescription = errorDescription
	payment.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakePaymentRepo) SetCaptured(paymentID, merchantID string) error {
	payment, ok := r.payments[paymentID]
	if !ok || payment.MerchantID != merchantID {
		return domain.ErrPaymentNotFound
	}
	payment.Captured = true
	return nil
}

func (r *fakePaymentRepo) GetPaymentsByMerchantID(merchantID string) ([]*domain.Payment, error) {
	return nil, nil
}

func (r *fakePaymentRepo) GetMerchantStats(merchantID string) (*domain.MerchantStats, error) {
	return &domain.MerchantStats{}, nil
}

type fakeRefundRepo struct {
	refunds map[string]*domain.Refund
}

func (r *fakeRefundRepo) CreateRefund(refund *domain.Refund) error {
	r.refunds[refund.ID] = refund
	return nil
}

func (r *fakeRefundRepo) GetRefundByID(refundID string) (*domain.Refund, error) {
	refund, ok := r.refunds[refundID]
	if !ok {
		return nil, domain.ErrRefundNotFound
	}
	copied := *refund
	return &copied, nil
}

func (r *fakeRefundRepo) SumAmountByPaymentID(paymentID string) (int64, error) {
	return 0, nil
}

func (r *fakeRefundRepo) MarkProcessed(refundID string, processedAt time.Time) error {
	refund, ok := r.refunds[refundID]
	if !ok {
		return domain.ErrRefundNotFound
	}
	refund.Status = domain.RefundProcessed
	refund.ProcessedAt = &processedAt
	return nil
}

func (r *fakeRefundRepo) GetRefundsByMerchantID(merchantID string) ([]*domain.Refund, error) {
	return nil, nil
}

type fakeMerchantRepo struct {
	merchants map[string]*domain.Merchant
}

func (r *fakeMerchantRepo) CreateMerchant(merchant *domain.Merchant) error {
	r.merchants[merchant.ID] = merchant
	return nil
}

func (r *fakeMerchantRepo) GetMerchantByID(merchantID string) (*domain.Merchant, error) {
	merchant, ok := r.merchants[merchantID]
	if !ok {
		return nil, domain.ErrMerchantNotFound
	}
	return merchant, nil
}

func (r *fakeMerchantRepo) UpdateWebhookConfig(merchantID, webhookURL, webhookSecret string) error {
	merchant, ok := r.merchants[merchantID]
	if !ok {
		return domain.ErrMerchantNotFound
	}
	merchant.WebhookURL = webhookURL
	merchant.WebhookSecret = webhookSecret
	return nil
}

type fakeWebhookLogRepo struct {
	logs []*domain.WebhookLog
}

func (r *fakeWebhookLogRepo) Append(log *domain.WebhookLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeWebhookLogRepo) GetWebhookLogByID(logID string) (*domain.WebhookLog, error) {
	for _, log := range r.logs {
		if log.ID == logID {
			return log, nil
		}
	}
	return nil, domain.ErrWebhookLogNotFound
}

func (r *fakeWebhookLogRepo) GetWebhookLogsByMerchantID(merchantID string) ([]*domain.WebhookLog, error) {
	return r.logs, nil
}

type fakeTaskQueue struct {
	webhookTasks []domain.WebhookTask
}

func (q *fakeTaskQueue) EnqueuePaymentProcessing(task domain.PaymentTask) error { return nil }

func (q *fakeTaskQueue) EnqueueRefundProcessing(task domain.RefundTask) error { return nil }

func (q *fakeTaskQueue) EnqueueWebhookDelivery(task domain.WebhookTask) error {
	q.webhookTasks = append(q.webhookTasks, task)
	return nil
}

func (q *fakeTaskQueue) GetQueueStats(queue string) (*domain.QueueStats, error) {
	return &domain.QueueStats{}, nil
}

type fakePublisher struct {
	published map[string][]domain.Message
}

func (p *fakePublisher) Publish(topic string, msgs ...domain.Message) error {
	if p.published == nil {
		p.published = make(map[string][]domain.Message)
	}
	p.published[topic] = append(p.published[topic], msgs...)
	return nil
}

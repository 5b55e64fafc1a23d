package usecase_test

import (
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestMetrics() *metrics.GatewayMetrics {
	return metrics.NewGatewayMetrics(prometheus.NewRegistry())
}

type fakeOrderRepo struct {
	orders map[string]*domain.Order
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[string]*domain.Order)}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return repo
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) GetOrdersByMerchantID(merchantID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, order := range r.orders {
		if order.MerchantID == merchantID {
			out = append(out, order)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments map[string]*domain.Payment
}

func newFakePaymentRepo(payments ...*domain.Payment) *fakePaymentRepo {
	repo := &fakePaymentRepo{payments: make(map[string]*domain.Payment)}
	for _, payment := range payments {
		repo.payments[payment.ID] = payment
	}
	return repo
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
	return payment, nil
}

func (r *fakePaymentRepo) UpdatePaymentStatus(paymentID string, status domain.PaymentStatus, errorCode, errorDescription string) error {
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
	var out []*domain.Payment
	for _, payment := range r.payments {
		if payment.MerchantID == merchantID {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) GetMerchantStats(merchantID string) (*domain.MerchantStats, error) {
	stats := &domain.MerchantStats{}
	for _, payment := range r.payments {
		if payment.MerchantID != merchantID {
			continue
		}
		stats.TotalCount++
		if payment.Status == domain.PaymentSuccess {
			stats.SuccessCount++
			stats.SuccessAmount += payment.Amount
		}
	}
	return stats, nil
}

type fakeRefundRepo struct {
	refunds map[string]*domain.Refund
}

func newFakeRefundRepo(refunds ...*domain.Refund) *fakeRefundRepo {
	repo := &fakeRefundRepo{refunds: make(map[string]*domain.Refund)}
	for _, refund := range refunds {
		repo.refunds[refund.ID] = refund
	}
	return repo
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
	return refund, nil
}

func (r *fakeRefundRepo) SumAmountByPaymentID(paymentID string) (int64, error) {
	var sum int64
	for _, refund := range r.refunds {
		if refund.PaymentID == paymentID {
			sum += refund.Amount
		}
	}
	return sum, nil
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
	var out []*domain.Refund
	for _, refund := range r.refunds {
		if refund.MerchantID == merchantID {
			out = append(out, refund)
		}
	}
	return out, nil
}

type fakeIdempotencyRepo struct {
	records map[string]*domain.IdempotencyRecord
	puts    int
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{records: make(map[string]*domain.IdempotencyRecord)}
}

func (r *fakeIdempotencyRepo) Get(key, merchantID string) (*domain.IdempotencyRecord, error) {
	record, ok := r.records[key+"|"+merchantID]
	if !ok || time.Now().After(record.ExpiresAt) {
		return nil, domain.ErrIdempotencyMiss
	}
	return record, nil
}

func (r *fakeIdempotencyRepo) Put(record *domain.IdempotencyRecord) error {
	r.puts++
	r.records[record.Key+"|"+record.MerchantID] = record
	return nil
}

func (r *fakeIdempotencyRepo) DeleteExpired() (int64, error) {
	var deleted int64
	for key, record := range r.records {
		if time.Now().After(record.ExpiresAt) {
			delete(r.records, key)
			deleted++
		}
	}
	return deleted, nil
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
	var out []*domain.WebhookLog
	for _, log := range r.logs {
		if log.MerchantID == merchantID {
			out = append(out, log)
		}
	}
	return out, nil
}

type fakeTaskQueue struct {
	paymentTasks []domain.PaymentTask
	refundTasks  []domain.RefundTask
	webhookTasks []domain.WebhookTask
	stats        map[string]*domain.QueueStats
}

func (q *fakeTaskQueue) EnqueuePaymentProcessing(task domain.PaymentTask) error {
	q.paymentTasks = append(q.paymentTasks, task)
	return nil
}

func (q *fakeTaskQueue) EnqueueRefundProcessing(task domain.RefundTask) error {
	q.refundTasks = append(q.refundTasks, task)
	return nil
}

func (q *fakeTaskQueue) EnqueueWebhookDelivery(task domain.WebhookTask) error {
	q.webhookTasks = append(q.webhookTasks, task)
	return nil
}

func (q *fakeTaskQueue) GetQueueStats(queue string) (*domain.QueueStats, error) {
	if stats, ok := q.stats[queue]; ok {
		return stats, nil
	}
	return &domain.QueueStats{}, nil
}

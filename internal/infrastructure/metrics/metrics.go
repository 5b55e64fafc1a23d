package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GatewayMetrics covers the payment lifecycle and webhook delivery.
type GatewayMetrics struct {
	PaymentsCreatedTotal  *prometheus.CounterVec
	PaymentsResolvedTotal *prometheus.CounterVec
	PaymentAmountTotal    *prometheus.CounterVec

	RefundsCreatedTotal   *prometheus.CounterVec
	RefundsProcessedTotal *prometheus.CounterVec

	WebhookDeliveriesTotal  *prometheus.CounterVec
	WebhookDeliveryDuration *prometheus.HistogramVec

	IdempotentReplaysTotal *prometheus.CounterVec
}

func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	factory := promauto.With(reg)

	return &GatewayMetrics{
		PaymentsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_payments_created_total",
				Help: "Payments accepted for processing",
			},
			[]string{"merchant_id", "method"},
		),

		PaymentsResolvedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_payments_resolved_total",
				Help: "Payments resolved by the processing worker",
			},
			[]string{"merchant_id", "method", "status"},
		),

		PaymentAmountTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_payment_amount_total",
				Help: "Total created payment amount in minor currency units",
			},
			[]string{"merchant_id", "currency"},
		),

		RefundsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_refunds_created_total",
				Help: "Refunds accepted for processing",
			},
			[]string{"merchant_id"},
		),

		RefundsProcessedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_refunds_processed_total",
				Help: "Refunds resolved by the refund worker",
			},
			[]string{"merchant_id"},
		),

		WebhookDeliveriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_webhook_deliveries_total",
				Help: "Webhook delivery attempts by outcome",
			},
			[]string{"merchant_id", "outcome"},
		),

		WebhookDeliveryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_webhook_delivery_duration_seconds",
				Help:    "Duration of webhook HTTP calls",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 8),
			},
			[]string{"outcome"},
		),

		IdempotentReplaysTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_idempotent_replays_total",
				Help: "Payment creations answered from the idempotency cache",
			},
			[]string{"merchant_id"},
		),
	}
}

func (m *GatewayMetrics) RecordPaymentCreated(merchantID, method, currency string, amount int64) {
	m.PaymentsCreatedTotal.WithLabelValues(merchantID, method).Inc()
	m.PaymentAmountTotal.WithLabelValues(merchantID, currency).Add(float64(amount))
}

func (m *GatewayMetrics) RecordPaymentResolved(merchantID, method, status string) {
	m.PaymentsResolvedTotal.WithLabelValues(merchantID, method, status).Inc()
}

func (m *GatewayMetrics) RecordRefundCreated(merchantID string) {
	m.RefundsCreatedTotal.WithLabelValues(merchantID).Inc()
}

func (m *GatewayMetrics) RecordRefundProcessed(merchantID string) {
	m.RefundsProcessedTotal.WithLabelValues(merchantID).Inc()
}

func (m *GatewayMetrics) RecordWebhookDelivery(merchantID, outcome string, durationSeconds float64) {
	m.WebhookDeliveriesTotal.WithLabelValues(merchantID, outcome).Inc()
	m.WebhookDeliveryDuration.WithLabelValues(outcome).Observe(durationSeconds)
}

func (m *GatewayMetrics) RecordIdempotentReplay(merchantID string) {
	m.IdempotentReplaysTotal.WithLabelValues(merchantID).Inc()
}

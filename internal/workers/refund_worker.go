package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/metrics"
)

// RefundProcessor consumes the refund-processing queue. Refunds always
// settle after the simulated delay; eligibility was enforced at creation.
type RefundProcessor struct {
	Refunds   domain.RefundRepository
	Queue     domain.TaskQueue
	Publisher domain.PublisherPort
	Metrics   *metrics.GatewayMetrics

	Delay       time.Duration
	EventsTopic string
}

func (w *RefundProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var task domain.RefundTask
	if err := json.Unmarshal(t.Payload(), &task); err != nil {
		return fmt.Errorf("unmarshal refund task: %v: %w", err, asynq.SkipRetry)
	}

	time.Sleep(w.Delay)

	refund, err := w.Refunds.GetRefundByID(task.RefundID)
	if err != nil {
		if errors.Is(err, domain.ErrRefundNotFound) {
			return fmt.Errorf("refund %s missing: %w", task.RefundID, asynq.SkipRetry)
		}
		return fmt.Errorf("load refund %s: %w", task.RefundID, err)
	}

	if refund.Status != domain.RefundProcessed {
		processedAt := time.Now().UTC()
		if err := w.Refunds.MarkProcessed(refund.ID, processedAt); err != nil {
			return fmt.Errorf("mark refund %s processed: %w", refund.ID, err)
		}
		refund.Status = domain.RefundProcessed
		refund.ProcessedAt = &processedAt

		w.Metrics.RecordRefundProcessed(refund.MerchantID)
	}

	body, err := json.Marshal(domain.WebhookEvent{
		Event:     domain.EventRefundProcessed,
		Timestamp: time.Now().Unix(),
		Data:      domain.WebhookEventData{Refund: refund},
	})
	if err != nil {
		return fmt.Errorf("marshal webhook event: %v: %w", err, asynq.SkipRetry)
	}

	err = w.Queue.EnqueueWebhookDelivery(domain.WebhookTask{
		MerchantID: refund.MerchantID,
		Event:      domain.EventRefundProcessed,
		Payload:    body,
	})
	if err != nil {
		return fmt.Errorf("enqueue webhook delivery: %w", err)
	}

	if err := w.Publisher.Publish(w.EventsTopic, domain.Message{
		Key:   []byte(refund.MerchantID),
		Value: body,
	}); err != nil {
		slog.Error("failed to publish refund event", "refund_id", refund.ID, "error", err.Error())
	}

	slog.Info("refund processed",
		"refund_id", refund.ID,
		"payment_id", refund.PaymentID,
		"merchant_id", refund.MerchantID,
	)
	return nil
}

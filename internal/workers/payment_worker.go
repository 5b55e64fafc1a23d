package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hibiken/asynq"
	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/metrics"
)

// PaymentProcessor consumes the payment-processing queue. It simulates the
// settlement leg with a configurable delay, resolves the payment to a
// terminal status and queues the matching webhook event.
type PaymentProcessor struct {
	Payments  domain.PaymentRepository
	Queue     domain.TaskQueue
	Publisher domain.PublisherPort
	Metrics   *metrics.GatewayMetrics

	Delay           time.Duration
	UPISuccessRate  float64
	CardSuccessRate float64
	// SuccessOverride forces the outcome when set; test configs use it to
	// make processing deterministic.
	SuccessOverride *bool

	EventsTopic string
}

func (w *PaymentProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var task domain.PaymentTask
	if err := json.Unmarshal(t.Payload(), &task); err != nil {
		return fmt.Errorf("unmarshal payment task: %v: %w", err, asynq.SkipRetry)
	}

	// Simulated bank latency. Runs to completion once dequeued.
	time.Sleep(w.Delay)

	payment, err := w.Payments.GetPaymentByID(task.PaymentID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return fmt.Errorf("payment %s missing: %w", task.PaymentID, asynq.SkipRetry)
		}
		return fmt.Errorf("load payment %s: %w", task.PaymentID, err)
	}

	if payment.Status.Terminal() {
		// Resolved on an earlier delivery of this job. Fall through so the
		// webhook still gets queued; consumers are expected to dedupe.
		slog.Warn("payment already resolved",
			"payment_id", payment.ID,
			"status", payment.Status,
		)
	} else {
		status := domain.PaymentFailed
		errorCode := "PAYMENT_FAILED"
		errorDescription := "Transaction declined"
		if w.decide(task.Method) {
			status = domain.PaymentSuccess
			errorCode = ""
			errorDescription = ""
		}

		if !payment.Status.CanTransition(status) {
			return fmt.Errorf("illegal transition %s -> %s for payment %s: %w",
				payment.Status, status, payment.ID, asynq.SkipRetry)
		}

		if err := w.Payments.UpdatePaymentStatus(payment.ID, status, errorCode, errorDescription); err != nil {
			return fmt.Errorf("update payment %s: %w", payment.ID, err)
		}

		payment.Status = status
		payment.ErrorCode = errorCode
		payment.ErrorDescription = errorDescription
		payment.UpdatedAt = time.Now().UTC()

		w.Metrics.RecordPaymentResolved(payment.MerchantID, string(payment.Method), string(status))
	}

	event := domain.EventPaymentFailed
	if payment.Status == domain.PaymentSuccess {
		event = domain.EventPaymentSuccess
	}

	body, err := json.Marshal(domain.WebhookEvent{
		Event:     event,
		Timestamp: time.Now().Unix(),
		Data:      domain.WebhookEventData{Payment: payment},
	})
	if err != nil {
		return fmt.Errorf("marshal webhook event: %v: %w", err, asynq.SkipRetry)
	}

	err = w.Queue.EnqueueWebhookDelivery(domain.WebhookTask{
		MerchantID: payment.MerchantID,
		Event:      event,
		Payload:    body,
	})
	if err != nil {
		return fmt.Errorf("enqueue webhook delivery: %w", err)
	}

	if err := w.Publisher.Publish(w.EventsTopic, domain.Message{
		Key:   []byte(payment.MerchantID),
		Value: body,
	}); err != nil {
		// The internal bus is best-effort; the webhook path is the contract.
		slog.Error("failed to publish payment event", "payment_id", payment.ID, "error", err.Error())
	}

	slog.Info("payment resolved",
		"payment_id", payment.ID,
		"merchant_id", payment.MerchantID,
		"status", payment.Status,
		"event", event,
	)
	return nil
}

func (w *PaymentProcessor) decide(method string) bool {
	if w.SuccessOverride != nil {
		return *w.SuccessOverride
	}
	rate := w.CardSuccessRate
	if method == string(domain.MethodUPI) {
		rate = w.UPISuccessRate
	}
	return rand.Float64() < rate
}

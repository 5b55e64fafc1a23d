package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/paylane/payment-gateway/internal/domain"
)

// Task type names routed through the asynq mux.
const (
	TypePaymentProcess = "payment:process"
	TypeRefundProcess  = "refund:process"
	TypeWebhookDeliver = "webhook:deliver"
)

// completedRetention keeps finished tasks around long enough for the
// completed counter in queue stats to be meaningful.
const completedRetention = 24 * time.Hour

const infraMaxRetry = 5

type AsynqTaskQueue struct {
	client             *asynq.Client
	inspector          *asynq.Inspector
	webhookMaxAttempts int
}

func NewAsynqTaskQueue(redisOpt asynq.RedisClientOpt, webhookMaxAttempts int) *AsynqTaskQueue {
	return &AsynqTaskQueue{
		client:             asynq.NewClient(redisOpt),
		inspector:          asynq.NewInspector(redisOpt),
		webhookMaxAttempts: webhookMaxAttempts,
	}
}

func (q *AsynqTaskQueue) EnqueuePaymentProcessing(task domain.PaymentTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal payment task: %w", err)
	}

	_, err = q.client.Enqueue(
		asynq.NewTask(TypePaymentProcess, payload),
		asynq.Queue(domain.QueuePaymentProcessing),
		asynq.MaxRetry(infraMaxRetry),
		asynq.Retention(completedRetention),
	)
	return err
}

func (q *AsynqTaskQueue) EnqueueRefundProcessing(task domain.RefundTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal refund task: %w", err)
	}

	_, err = q.client.Enqueue(
		asynq.NewTask(TypeRefundProcess, payload),
		asynq.Queue(domain.QueueRefundProcessing),
		asynq.MaxRetry(infraMaxRetry),
		asynq.Retention(completedRetention),
	)
	return err
}

func (q *AsynqTaskQueue) EnqueueWebhookDelivery(task domain.WebhookTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal webhook task: %w", err)
	}

	// attempts total = first run + retries
	_, err = q.client.Enqueue(
		asynq.NewTask(TypeWebhookDeliver, payload),
		asynq.Queue(domain.QueueWebhookDelivery),
		asynq.MaxRetry(q.webhookMaxAttempts-1),
		asynq.Retention(completedRetention),
	)
	return err
}

func (q *AsynqTaskQueue) GetQueueStats(queue string) (*domain.QueueStats, error) {
	info, err := q.inspector.GetQueueInfo(queue)
	if err != nil {
		return nil, fmt.Errorf("inspect queue %s: %w", queue, err)
	}

	return &domain.QueueStats{
		Pending:    info.Pending + info.Scheduled + info.Retry,
		Processing: info.Active,
		Completed:  info.Completed,
		Failed:     info.Failed,
	}, nil
}

func (q *AsynqTaskQueue) Close() error {
	return q.client.Close()
}

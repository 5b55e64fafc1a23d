package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/paylane/payment-gateway/internal/domain"
)

type ServerConfig struct {
	Concurrency int
	// BackoffBase is the delay before the first retry; each subsequent
	// retry doubles it, capped at BackoffMax.
	BackoffBase time.Duration
	BackoffMax  time.Duration
}

// NewServer builds the worker-side asynq server. Webhook delivery gets the
// largest queue weight because it is the chattiest and the only one doing
// external I/O per task.
func NewServer(redisOpt asynq.RedisClientOpt, cfg ServerConfig) *asynq.Server {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 10
	}
	if cfg.BackoffMax <= 0 {
		cfg.BackoffMax = 32 * cfg.BackoffBase
	}

	return asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Concurrency,
		Queues: map[string]int{
			domain.QueueWebhookDelivery:   5,
			domain.QueuePaymentProcessing: 3,
			domain.QueueRefundProcessing:  2,
		},
		RetryDelayFunc: func(n int, err error, task *asynq.Task) time.Duration {
			return RetryDelay(cfg.BackoffBase, cfg.BackoffMax, n)
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			slog.Error("task failed", "type", task.Type(), "error", err.Error())
		}),
	})
}

// RetryDelay returns the exponential backoff delay for the n-th retry
// (n starts at 0 for the first retry).
func RetryDelay(base, max time.Duration, n int) time.Duration {
	if n < 0 {
		n = 0
	}
	delay := base * time.Duration(1<<n)
	if delay > max || delay <= 0 {
		return max
	}
	return delay
}

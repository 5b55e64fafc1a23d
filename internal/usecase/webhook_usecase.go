package usecase

import (
	"fmt"
	"log/slog"

	"github.com/paylane/payment-gateway/internal/domain"
)

type WebhookUsecase interface {
	GetLogs(merchantID string) ([]*domain.WebhookLog, error)
	// RetryDelivery re-enqueues the payload behind a delivery log with a
	// fresh attempt budget, independent of any automatic retries still
	// pending for the original job.
	RetryDelivery(logID, merchantID string) error
	GetQueueStats() (map[string]*domain.QueueStats, error)
}

type DefaultWebhookUsecase struct {
	LogRepo domain.WebhookLogRepository
	Queue   domain.TaskQueue
}

func NewDefaultWebhookUsecase(logRepo domain.WebhookLogRepository, queue domain.TaskQueue) *DefaultWebhookUsecase {
	return &DefaultWebhookUsecase{
		LogRepo: logRepo,
		Queue:   queue,
	}
}

func (uc *DefaultWebhookUsecase) GetLogs(merchantID string) ([]*domain.WebhookLog, error) {
	return uc.LogRepo.GetWebhookLogsByMerchantID(merchantID)
}

func (uc *DefaultWebhookUsecase) RetryDelivery(logID, merchantID string) error {
	webhookLog, err := uc.LogRepo.GetWebhookLogByID(logID)
	if err != nil {
		return err
	}
	if webhookLog.MerchantID != merchantID {
		return domain.ErrWebhookLogNotFound
	}

	err = uc.Queue.EnqueueWebhookDelivery(domain.WebhookTask{
		MerchantID: webhookLog.MerchantID,
		Event:      webhookLog.Event,
		Payload:    webhookLog.Payload,
	})
	if err != nil {
		return fmt.Errorf("enqueue webhook retry: %w", err)
	}

	slog.Info("webhook delivery re-enqueued",
		"log_id", webhookLog.ID,
		"merchant_id", webhookLog.MerchantID,
		"event", webhookLog.Event,
	)
	return nil
}

func (uc *DefaultWebhookUsecase) GetQueueStats() (map[string]*domain.QueueStats, error) {
	queues := []string{
		domain.QueuePaymentProcessing,
		domain.QueueRefundProcessing,
		domain.QueueWebhookDelivery,
	}

	stats := make(map[string]*domain.QueueStats, len(queues))
	for _, queue := range queues {
		queueStats, err := uc.Queue.GetQueueStats(queue)
		if err != nil {
			return nil, err
		}
		stats[queue] = queueStats
	}
	return stats, nil
}

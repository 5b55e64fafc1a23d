package usecase_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/usecase"
	"github.com/stretchr/testify/require"
)

func TestRetryDelivery(t *testing.T) {
	t.Parallel()

	payload := json.RawMessage(`{"event":"payment.success","timestamp":1700000000,"data":{}}`)
	logRepo := &fakeWebhookLogRepo{logs: []*domain.WebhookLog{{
		ID:            "whl_retry0000001",
		MerchantID:    testMerchantID,
		Event:         domain.EventPaymentSuccess,
		Payload:       payload,
		Status:        domain.WebhookLogPending,
		Attempts:      5,
		LastAttemptAt: time.Now().UTC(),
		ResponseCode:  503,
	}}}
	queue := &fakeTaskQueue{}
	uc := usecase.NewDefaultWebhookUsecase(logRepo, queue)

	err := uc.RetryDelivery("whl_retry0000001", testMerchantID)
	require.NoError(t, err)

	require.Len(t, queue.webhookTasks, 1)
	task := queue.webhookTasks[0]
	require.Equal(t, testMerchantID, task.MerchantID)
	require.Equal(t, domain.EventPaymentSuccess, task.Event)
	// The retried delivery carries the original payload bytes.
	require.Equal(t, payload, task.Payload)
}

func TestRetryDelivery_NotFound(t *testing.T) {
	t.Parallel()

	logRepo := &fakeWebhookLogRepo{logs: []*domain.WebhookLog{{
		ID:         "whl_retry0000001",
		MerchantID: testMerchantID,
		Event:      domain.EventPaymentFailed,
	}}}
	queue := &fakeTaskQueue{}
	uc := usecase.NewDefaultWebhookUsecase(logRepo, queue)

	err := uc.RetryDelivery("whl_missing", testMerchantID)
	require.ErrorIs(t, err, domain.ErrWebhookLogNotFound)

	// A foreign merchant must not learn the log exists.
	err = uc.RetryDelivery("whl_retry0000001", otherMerchantID)
	require.ErrorIs(t, err, domain.ErrWebhookLogNotFound)

	require.Empty(t, queue.webhookTasks)
}

func TestGetQueueStats(t *testing.T) {
	t.Parallel()

	queue := &fakeTaskQueue{stats: map[string]*domain.QueueStats{
		domain.QueuePaymentProcessing: {Pending: 3, Processing: 1, Completed: 40, Failed: 2},
		domain.QueueWebhookDelivery:   {Pending: 7, Completed: 12},
	}}
	uc := usecase.NewDefaultWebhookUsecase(&fakeWebhookLogRepo{}, queue)

	stats, err := uc.GetQueueStats()
	require.NoError(t, err)
	require.Len(t, stats, 3)
	require.Equal(t, 3, stats[domain.QueuePaymentProcessing].Pending)
	require.Equal(t, 7, stats[domain.QueueWebhookDelivery].Pending)
	require.Equal(t, 0, stats[domain.QueueRefundProcessing].Pending)
}

func TestGetLogs(t *testing.T) {
	t.Parallel()

	logRepo := &fakeWebhookLogRepo{logs: []*domain.WebhookLog{
		{ID: "whl_1", MerchantID: testMerchantID},
		{ID: "whl_2", MerchantID: otherMerchantID},
		{ID: "whl_3", MerchantID: testMerchantID},
	}}
	uc := usecase.NewDefaultWebhookUsecase(logRepo, &fakeTaskQueue{})

	logs, err := uc.GetLogs(testMerchantID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
}

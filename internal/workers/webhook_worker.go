package workers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/identifier"
	"github.com/paylane/payment-gateway/internal/infrastructure/metrics"
)

const SignatureHeader = "X-Webhook-Signature"

// responseBodyLimit caps how much of a merchant's response gets persisted
// in the audit log.
const responseBodyLimit = 4 << 10

// WebhookDeliverer consumes the webhook-delivery queue. Every attempt
// appends one audit row; failures are signalled back to the queue so its
// backoff policy reschedules the job.
type WebhookDeliverer struct {
	Merchants domain.MerchantRepository
	Logs      domain.WebhookLogRepository
	Metrics   *metrics.GatewayMetrics

	// Client must carry the delivery timeout.
	Client *http.Client
}

func NewWebhookDeliverer(
	merchants domain.MerchantRepository,
	logs domain.WebhookLogRepository,
	gatewayMetrics *metrics.GatewayMetrics,
	timeout time.Duration,
) *WebhookDeliverer {
	return &WebhookDeliverer{
		Merchants: merchants,
		Logs:      logs,
		Metrics:   gatewayMetrics,
		Client:    &http.Client{Timeout: timeout},
	}
}

func (w *WebhookDeliverer) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var task domain.WebhookTask
	if err := json.Unmarshal(t.Payload(), &task); err != nil {
		return fmt.Errorf("unmarshal webhook task: %v: %w", err, asynq.SkipRetry)
	}

	merchant, err := w.Merchants.GetMerchantByID(task.MerchantID)
	if err != nil {
		if errors.Is(err, domain.ErrMerchantNotFound) {
			slog.Warn("webhook for unknown merchant dropped", "merchant_id", task.MerchantID)
			return nil
		}
		return fmt.Errorf("load merchant %s: %w", task.MerchantID, err)
	}

	// Merchants without a callback URL opted out; completing the job here
	// keeps them from accumulating failing deliveries. No log row either.
	if merchant.WebhookURL == "" {
		return nil
	}

	retried, _ := asynq.GetRetryCount(ctx)
	attempts := retried + 1

	signature := Sign(task.Payload, merchant.WebhookSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, merchant.WebhookURL, bytes.NewReader(task.Payload))
	if err != nil {
		return fmt.Errorf("build webhook request: %v: %w", err, asynq.SkipRetry)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, signature)

	started := time.Now()
	resp, err := w.Client.Do(req)
	if err != nil {
		w.appendLog(&task, domain.WebhookLogPending, attempts, 0, err.Error())
		w.Metrics.RecordWebhookDelivery(task.MerchantID, "error", time.Since(started).Seconds())
		return fmt.Errorf("webhook delivery to %s: %w", merchant.WebhookURL, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))
	duration := time.Since(started).Seconds()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		w.appendLog(&task, domain.WebhookLogSuccess, attempts, resp.StatusCode, "")
		w.Metrics.RecordWebhookDelivery(task.MerchantID, "success", duration)
		slog.Info("webhook delivered",
			"merchant_id", task.MerchantID,
			"event", task.Event,
			"attempts", attempts,
			"response_code", resp.StatusCode,
		)
		return nil
	}

	w.appendLog(&task, domain.WebhookLogPending, attempts, resp.StatusCode, string(body))
	w.Metrics.RecordWebhookDelivery(task.MerchantID, "failed", duration)
	return fmt.Errorf("webhook delivery to %s: status %d", merchant.WebhookURL, resp.StatusCode)
}

func (w *WebhookDeliverer) appendLog(task *domain.WebhookTask, status domain.WebhookLogStatus, attempts, responseCode int, responseBody string) {
	err := w.Logs.Append(&domain.WebhookLog{
		ID:            identifier.New(identifier.WebhookLogPrefix),
		MerchantID:    task.MerchantID,
		Event:         task.Event,
		Payload:       task.Payload,
		Status:        status,
		Attempts:      attempts,
		LastAttemptAt: time.Now().UTC(),
		ResponseCode:  responseCode,
		ResponseBody:  responseBody,
	})
	if err != nil {
		slog.Error("failed to append webhook log",
			"merchant_id", task.MerchantID,
			"event", task.Event,
			"error", err.Error(),
		)
	}
}

// Sign computes the hex HMAC-SHA256 of the exact payload bytes with the
// merchant's webhook secret.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

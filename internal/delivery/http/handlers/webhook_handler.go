package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paylane/payment-gateway/internal/usecase"
)

type WebhookHandler struct {
	webhookUsecase usecase.WebhookUsecase
}

func NewWebhookHandler(webhookUsecase usecase.WebhookUsecase) *WebhookHandler {
	return &WebhookHandler{webhookUsecase: webhookUsecase}
}

func (h *WebhookHandler) GetLogs(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	logs, err := h.webhookUsecase.GetLogs(merchant)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *WebhookHandler) RetryDelivery(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	if err := h.webhookUsecase.RetryDelivery(c.Param("log_id"), merchant); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

func (h *WebhookHandler) GetQueueStats(c *gin.Context) {
	stats, err := h.webhookUsecase.GetQueueStats()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

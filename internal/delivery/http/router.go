package http

import (
	"github.com/gin-gonic/gin"
	"github.com/paylane/payment-gateway/internal/delivery/http/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	orderHandler *handlers.OrderHandler,
	paymentHandler *handlers.PaymentHandler,
	refundHandler *handlers.RefundHandler,
	webhookHandler *handlers.WebhookHandler,
) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/orders", orderHandler.CreateOrder)
		v1.GET("/orders", orderHandler.GetOrders)
		v1.GET("/orders/:order_id", orderHandler.GetOrder)

		v1.POST("/payments", paymentHandler.CreatePayment)
		v1.GET("/payments", paymentHandler.GetTransactions)
		v1.GET("/payments/:payment_id", paymentHandler.GetPayment)
		v1.POST("/payments/:payment_id/capture", paymentHandler.CapturePayment)
		v1.POST("/payments/:payment_id/refunds", refundHandler.CreateRefund)

		v1.GET("/refunds", refundHandler.GetRefunds)
		v1.GET("/refunds/:refund_id", refundHandler.GetRefund)

		v1.GET("/dashboard/stats", paymentHandler.GetDashboardStats)

		v1.GET("/webhooks/logs", webhookHandler.GetLogs)
		v1.POST("/webhooks/logs/:log_id/retry", webhookHandler.RetryDelivery)
		v1.GET("/queues/stats", webhookHandler.GetQueueStats)
	}

	return r
}

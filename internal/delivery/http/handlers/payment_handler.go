package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paylane/payment-gateway/internal/usecase"
	paymentdto "github.com/paylane/payment-gateway/internal/usecase/dto/payment"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

type createPaymentRequest struct {
	OrderID string       `json:"order_id" binding:"required"`
	Method  string       `json:"method" binding:"required"`
	VPA     string       `json:"vpa"`
	Card    *cardRequest `json:"card"`
}

type cardRequest struct {
	Number      string `json:"number"`
	CVV         string `json:"cvv"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Holder      string `json:"holder"`
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":        "BAD_REQUEST_ERROR",
			"description": err.Error(),
		}})
		return
	}

	input := &paymentdto.CreatePaymentInput{
		MerchantID:     merchant,
		OrderID:        req.OrderID,
		Method:         req.Method,
		VPA:            req.VPA,
		IdempotencyKey: c.GetHeader(IdempotencyKeyHeader),
	}
	if req.Card != nil {
		input.Card = &paymentdto.CardDetails{
			Number:      req.Card.Number,
			CVV:         req.Card.CVV,
			ExpiryMonth: req.Card.ExpiryMonth,
			ExpiryYear:  req.Card.ExpiryYear,
			Holder:      req.Card.Holder,
		}
	}

	output, err := h.paymentUsecase.CreatePayment(input)
	if err != nil {
		writeError(c, err)
		return
	}

	// Replays must be byte-identical to the first response, so the cached
	// body is written verbatim.
	if output.Replayed {
		c.Header("X-Idempotent-Replay", "true")
	}
	c.Data(http.StatusCreated, "application/json", output.Body)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentUsecase.GetPayment(c.Param("payment_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) CapturePayment(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	payment, err := h.paymentUsecase.CapturePayment(c.Param("payment_id"), merchant)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) GetTransactions(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	payments, err := h.paymentUsecase.GetTransactions(merchant)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetDashboardStats(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	stats, err := h.paymentUsecase.GetDashboardStats(merchant)
	if err != nil {
		writeError(c, err)
		return
	}

	successRate := 0
	if stats.TotalCount > 0 {
		successRate = int(float64(stats.SuccessCount) / float64(stats.TotalCount) * 100)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       stats.TotalCount,
		"amount":      stats.SuccessAmount,
		"successRate": fmt.Sprintf("%d%%", successRate),
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paylane/payment-gateway/internal/usecase"
	refunddto "github.com/paylane/payment-gateway/internal/usecase/dto/refund"
)

type RefundHandler struct {
	refundUsecase usecase.RefundUsecase
}

func NewRefundHandler(refundUsecase usecase.RefundUsecase) *RefundHandler {
	return &RefundHandler{refundUsecase: refundUsecase}
}

type createRefundRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Reason string `json:"reason"`
}

func (h *RefundHandler) CreateRefund(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	var req createRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":        "BAD_REQUEST_ERROR",
			"description": err.Error(),
		}})
		return
	}

	refund, err := h.refundUsecase.CreateRefund(&refunddto.CreateRefundInput{
		MerchantID: merchant,
		PaymentID:  c.Param("payment_id"),
		Amount:     req.Amount,
		Reason:     req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, refund)
}

func (h *RefundHandler) GetRefund(c *gin.Context) {
	refund, err := h.refundUsecase.GetRefund(c.Param("refund_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, refund)
}

func (h *RefundHandler) GetRefunds(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	refunds, err := h.refundUsecase.GetRefunds(merchant)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, refunds)
}

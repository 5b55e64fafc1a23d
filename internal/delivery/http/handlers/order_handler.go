package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paylane/payment-gateway/internal/usecase"
	orderdto "github.com/paylane/payment-gateway/internal/usecase/dto/order"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

type createOrderRequest struct {
	Amount   int64             `json:"amount" binding:"required"`
	Currency string            `json:"currency" binding:"required"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":        "BAD_REQUEST_ERROR",
			"description": err.Error(),
		}})
		return
	}

	order, err := h.orderUsecase.CreateOrder(&orderdto.CreateOrderInput{
		MerchantID: merchant,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Receipt:    req.Receipt,
		Notes:      req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderUsecase.GetOrder(c.Param("order_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	orders, err := h.orderUsecase.GetOrders(merchant)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

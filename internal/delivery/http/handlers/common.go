package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paylane/payment-gateway/internal/domain"
)

// MerchantIDHeader carries the merchant identity resolved by the upstream
// auth layer. The gateway trusts it; authentication is not this service's
// concern.
const MerchantIDHeader = "X-Merchant-Id"

const IdempotencyKeyHeader = "X-Idempotency-Key"

type errorResponse struct {
	Error *domain.GatewayError `json:"error"`
}

func merchantID(c *gin.Context) (string, bool) {
	id := c.GetHeader(MerchantIDHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: domain.NewGatewayError("BAD_REQUEST_ERROR", "merchant identity missing"),
		})
		return "", false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	var gatewayErr *domain.GatewayError
	if !errors.As(err, &gatewayErr) {
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error: domain.NewGatewayError("SERVER_ERROR", "internal server error"),
		})
		return
	}

	c.JSON(statusFor(gatewayErr.Code), errorResponse{Error: gatewayErr})
}

func statusFor(code string) int {
	switch code {
	case "NOT_FOUND_ERROR":
		return http.StatusNotFound
	case "INVALID_STATE_ERROR", "AMOUNT_EXCEEDED_ERROR":
		return http.StatusConflict
	case "BAD_REQUEST_ERROR", "INVALID_VPA", "INVALID_CARD", "EXPIRED_CARD":
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

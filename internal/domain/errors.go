package domain

import "fmt"

// GatewayError is the structured {code, description} error shape returned on
// every synchronous path. Worker-side failures never carry one of these; they
// surface only through job retries and webhook logs.
type GatewayError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func NewGatewayError(code, description string) *GatewayError {
	return &GatewayError{Code: code, Description: description}
}

var (
	ErrInvalidOrder      = NewGatewayError("BAD_REQUEST_ERROR", "invalid order")
	ErrOrderMismatch     = NewGatewayError("BAD_REQUEST_ERROR", "order does not belong to merchant")
	ErrInvalidVPA        = NewGatewayError("INVALID_VPA", "VPA format invalid")
	ErrInvalidCard       = NewGatewayError("INVALID_CARD", "card validation failed")
	ErrExpiredCard       = NewGatewayError("EXPIRED_CARD", "card expired")
	ErrUnsupportedMethod = NewGatewayError("BAD_REQUEST_ERROR", "invalid method")
	ErrInvalidAmount     = NewGatewayError("BAD_REQUEST_ERROR", "amount must be positive")

	ErrOrderNotFound      = NewGatewayError("NOT_FOUND_ERROR", "order not found")
	ErrPaymentNotFound    = NewGatewayError("NOT_FOUND_ERROR", "payment not found")
	ErrRefundNotFound     = NewGatewayError("NOT_FOUND_ERROR", "refund not found")
	ErrMerchantNotFound   = NewGatewayError("NOT_FOUND_ERROR", "merchant not found")
	ErrWebhookLogNotFound = NewGatewayError("NOT_FOUND_ERROR", "webhook log not found")

	ErrPaymentNotRefundable = NewGatewayError("INVALID_STATE_ERROR", "payment is not in a refundable state")
	ErrRefundAmountExceeded = NewGatewayError("AMOUNT_EXCEEDED_ERROR", "refund amount exceeds remaining captured amount")
)

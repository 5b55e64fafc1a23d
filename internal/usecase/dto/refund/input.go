package refunddto

type CreateRefundInput struct {
	MerchantID string
	PaymentID  string
	Amount     int64
	Reason     string
}

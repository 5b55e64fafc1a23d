package paymentdto

type CreatePaymentInput struct {
	MerchantID     string
	OrderID        string
	Method         string
	VPA            string
	Card           *CardDetails
	IdempotencyKey string
}

// CardDetails exists only in flight. Number and CVV are validated and
// discarded; nothing past network + last4 is handed to the repositories.
type CardDetails struct {
	Number      string
	CVV         string
	ExpiryMonth int
	ExpiryYear  int
	Holder      string
}

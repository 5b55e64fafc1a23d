package paymentdto

import (
	"encoding/json"

	"github.com/paylane/payment-gateway/internal/domain"
)

type CreatePaymentOutput struct {
	Payment *domain.Payment
	// Body is the exact serialized response. It is the value cached under
	// the idempotency key, so replays are byte-identical.
	Body json.RawMessage
	// Replayed is true when Body came from the idempotency cache.
	Replayed bool
}

package domain

import (
	"encoding/json"
	"time"
)

// IdempotencyRecord caches the exact response body returned for a payment
// creation keyed by (key, merchant). A hit replays the stored bytes verbatim.
type IdempotencyRecord struct {
	Key        string
	MerchantID string
	Response   json.RawMessage
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

type IdempotencyRepository interface {
	// Get returns the record for (key, merchantID) if it has not expired.
	// Expired or absent records yield ErrIdempotencyMiss.
	Get(key, merchantID string) (*IdempotencyRecord, error)
	// Put stores the record, silently overwriting an unexpired one for the
	// same composite key.
	Put(record *IdempotencyRecord) error
	// DeleteExpired removes records past their expiry. Housekeeping only;
	// Get already treats expired records as absent.
	DeleteExpired() (int64, error)
}

// ErrIdempotencyMiss is internal to the creation flow and never reaches a
// caller; a miss simply means the request proceeds as a fresh creation.
var ErrIdempotencyMiss = NewGatewayError("IDEMPOTENCY_MISS", "no cached response for key")

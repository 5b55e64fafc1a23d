package models

import "time"

// IdempotencyRecordModel identity is the composite (key, merchant_id).
type IdempotencyRecordModel struct {
	Key        string `gorm:"primaryKey"`
	MerchantID string `gorm:"primaryKey"`
	Response   []byte `gorm:"type:jsonb"`
	ExpiresAt  time.Time `gorm:"index:idx_idempotency_expires"`
	CreatedAt  time.Time
}

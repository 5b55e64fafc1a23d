package models

import "time"

// WebhookLogModel rows are append-only: one row per delivery attempt.
type WebhookLogModel struct {
	ID            string `gorm:"primaryKey"`
	MerchantID    string `gorm:"index:idx_webhook_logs_merchant"`
	Event         string
	Payload       []byte `gorm:"type:jsonb"`
	Status        string
	Attempts      int
	LastAttemptAt time.Time
	ResponseCode  int
	ResponseBody  string
	CreatedAt     time.Time `gorm:"index:idx_webhook_logs_created_at"`
}

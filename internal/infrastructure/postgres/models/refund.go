package models

import "time"

type RefundModel struct {
	ID          string `gorm:"primaryKey"`
	PaymentID   string `gorm:"index:idx_refunds_payment"`
	MerchantID  string `gorm:"index:idx_refunds_merchant"`
	Amount      int64
	Reason      string
	Status      string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

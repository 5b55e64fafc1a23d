package models

import "time"

type OrderModel struct {
	ID         string `gorm:"primaryKey"`
	MerchantID string `gorm:"index:idx_orders_merchant"`
	Amount     int64
	Currency   string
	Receipt    string
	Notes      string `gorm:"type:jsonb"`
	Status     string
	CreatedAt  time.Time `gorm:"index:idx_orders_created_at"`
}

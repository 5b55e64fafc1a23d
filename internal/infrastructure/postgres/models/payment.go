package models

import "time"

type PaymentModel struct {
	ID               string `gorm:"primaryKey"`
	OrderID          string `gorm:"index:idx_payments_order"`
	MerchantID       string `gorm:"index:idx_payments_merchant"`
	Amount           int64
	Currency         string
	Method           string
	Status           string `gorm:"index:idx_payments_status"`
	VPA              string
	CardNetwork      string
	CardLast4        string
	ErrorCode        string
	ErrorDescription string
	Captured         bool
	CreatedAt        time.Time `gorm:"index:idx_payments_created_at"`
	UpdatedAt        time.Time
}

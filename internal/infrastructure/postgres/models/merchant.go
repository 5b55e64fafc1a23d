package models

import "time"

type MerchantModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Name          string
	WebhookURL    string
	WebhookSecret string
	CreatedAt     time.Time
}

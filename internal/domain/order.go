package domain

import "time"

type OrderStatus string

const (
	OrderCreated OrderStatus = "created"
)

type Order struct {
	ID         string            `json:"id"`
	MerchantID string            `json:"merchant_id"`
	Amount     int64             `json:"amount"`
	Currency   string            `json:"currency"`
	Receipt    string            `json:"receipt,omitempty"`
	Notes      map[string]string `json:"notes,omitempty"`
	Status     OrderStatus       `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	GetOrdersByMerchantID(merchantID string) ([]*Order, error)
}

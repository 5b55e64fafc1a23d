package mappers

import (
	"encoding/json"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	notes := "{}"
	if len(order.Notes) > 0 {
		if b, err := json.Marshal(order.Notes); err == nil {
			notes = string(b)
		}
	}

	return &models.OrderModel{
		ID:         order.ID,
		MerchantID: order.MerchantID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		Receipt:    order.Receipt,
		Notes:      notes,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
	}
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	var notes map[string]string
	if model.Notes != "" {
		_ = json.Unmarshal([]byte(model.Notes), &notes)
	}

	return &domain.Order{
		ID:         model.ID,
		MerchantID: model.MerchantID,
		Amount:     model.Amount,
		Currency:   model.Currency,
		Receipt:    model.Receipt,
		Notes:      notes,
		Status:     domain.OrderStatus(model.Status),
		CreatedAt:  model.CreatedAt,
	}
}

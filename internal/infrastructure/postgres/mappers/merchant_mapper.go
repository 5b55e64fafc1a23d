package mappers

import (
	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/models"
)

func ToGORMMerchant(merchant *domain.Merchant) *models.MerchantModel {
	return &models.MerchantModel{
		ID:            merchant.ID,
		Name:          merchant.Name,
		WebhookURL:    merchant.WebhookURL,
		WebhookSecret: merchant.WebhookSecret,
		CreatedAt:     merchant.CreatedAt,
	}
}

func ToDomainMerchant(model *models.MerchantModel) *domain.Merchant {
	return &domain.Merchant{
		ID:            model.ID,
		Name:          model.Name,
		WebhookURL:    model.WebhookURL,
		WebhookSecret: model.WebhookSecret,
		CreatedAt:     model.CreatedAt,
	}
}

package repository

import (
	"errors"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/mappers"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultMerchantRepository struct {
	DB *gorm.DB
}

func NewDefaultMerchantRepository(db *gorm.DB) *DefaultMerchantRepository {
	return &DefaultMerchantRepository{DB: db}
}

func (r *DefaultMerchantRepository) CreateMerchant(merchant *domain.Merchant) error {
	merchantModel := mappers.ToGORMMerchant(merchant)
	if err := r.DB.Create(merchantModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultMerchantRepository) GetMerchantByID(merchantID string) (*domain.Merchant, error) {
	var merchantModel models.MerchantModel
	if err := r.DB.First(&merchantModel, "id = ?", merchantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMerchantNotFound
		}
		return nil, err
	}

	return mappers.ToDomainMerchant(&merchantModel), nil
}

func (r *DefaultMerchantRepository) UpdateWebhookConfig(merchantID, webhookURL, webhookSecret string) error {
	result := r.DB.Model(&models.MerchantModel{}).
		Where("id = ?", merchantID).
		Updates(map[string]any{
			"webhook_url":    webhookURL,
			"webhook_secret": webhookSecret,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMerchantNotFound
	}
	return nil
}

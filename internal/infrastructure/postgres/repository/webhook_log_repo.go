package repository

import (
	"errors"
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/mappers"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWebhookLogRepository struct {
	DB *gorm.DB
}

func NewDefaultWebhookLogRepository(db *gorm.DB) *DefaultWebhookLogRepository {
	return &DefaultWebhookLogRepository{DB: db}
}

// Append inserts a new attempt row. Existing rows are never updated; the
// audit trail for a delivery is the full sequence of its rows.
func (r *DefaultWebhookLogRepository) Append(log *domain.WebhookLog) error {
	logModel := mappers.ToGORMWebhookLog(log)
	logModel.CreatedAt = time.Now()
	if err := r.DB.Create(logModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultWebhookLogRepository) GetWebhookLogByID(logID string) (*domain.WebhookLog, error) {
	var logModel models.WebhookLogModel
	if err := r.DB.First(&logModel, "id = ?", logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWebhookLogNotFound
		}
		return nil, err
	}

	return mappers.ToDomainWebhookLog(&logModel), nil
}

func (r *DefaultWebhookLogRepository) GetWebhookLogsByMerchantID(merchantID string) ([]*domain.WebhookLog, error) {
	var logModels []models.WebhookLogModel
	err := r.DB.
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&logModels).Error
	if err != nil {
		return nil, err
	}

	logs := make([]*domain.WebhookLog, len(logModels))
	for i := range logModels {
		logs[i] = mappers.ToDomainWebhookLog(&logModels[i])
	}
	return logs, nil
}

package repository

import (
	"errors"
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/mappers"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRefundRepository struct {
	DB *gorm.DB
}

func NewDefaultRefundRepository(db *gorm.DB) *DefaultRefundRepository {
	return &DefaultRefundRepository{DB: db}
}

func (r *DefaultRefundRepository) CreateRefund(refund *domain.Refund) error {
	refundModel := mappers.ToGORMRefund(refund)
	if err := r.DB.Create(refundModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultRefundRepository) GetRefundByID(refundID string) (*domain.Refund, error) {
	var refundModel models.RefundModel
	if err := r.DB.First(&refundModel, "id = ?", refundID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRefundNotFound
		}
		return nil, err
	}

	return mappers.ToDomainRefund(&refundModel), nil
}

func (r *DefaultRefundRepository) SumAmountByPaymentID(paymentID string) (int64, error) {
	var total int64
	err := r.DB.Model(&models.RefundModel{}).
		Where("payment_id = ?", paymentID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *DefaultRefundRepository) MarkProcessed(refundID string, processedAt time.Time) error {
	result := r.DB.Model(&models.RefundModel{}).
		Where("id = ?", refundID).
		Updates(map[string]any{
			"status":       string(domain.RefundProcessed),
			"processed_at": processedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRefundNotFound
	}
	return nil
}

func (r *DefaultRefundRepository) GetRefundsByMerchantID(merchantID string) ([]*domain.Refund, error) {
	var refundModels []models.RefundModel
	err := r.DB.
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&refundModels).Error
	if err != nil {
		return nil, err
	}

	refunds := make([]*domain.Refund, len(refundModels))
	for i := range refundModels {
		refunds[i] = mappers.ToDomainRefund(&refundModels[i])
	}
	return refunds, nil
}

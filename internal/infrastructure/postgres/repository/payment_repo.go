package repository

import (
	"errors"
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/mappers"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePayment(payment *domain.Payment) error {
	paymentModel := mappers.ToGORMPayment(payment)
	if err := r.DB.Create(paymentModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultPaymentRepository) GetPaymentByID(paymentID string) (*domain.Payment, error) {
	var paymentModel models.PaymentModel
	if err := r.DB.First(&paymentModel, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	return mappers.ToDomainPayment(&paymentModel), nil
}

func (r *DefaultPaymentRepository) UpdatePaymentStatus(paymentID string, status domain.PaymentStatus, errorCode, errorDescription string) error {
	result := r.DB.Model(&models.PaymentModel{}).
		Where("id = ?", paymentID).
		Updates(map[string]any{
			"status":            string(status),
			"error_code":        errorCode,
			"error_description": errorDescription,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *DefaultPaymentRepository) SetCaptured(paymentID, merchantID string) error {
	result := r.DB.Model(&models.PaymentModel{}).
		Where("id = ? AND merchant_id = ?", paymentID, merchantID).
		Updates(map[string]any{
			"captured":   true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *DefaultPaymentRepository) GetPaymentsByMerchantID(merchantID string) ([]*domain.Payment, error) {
	var paymentModels []models.PaymentModel
	err := r.DB.
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&paymentModels).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*domain.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = mappers.ToDomainPayment(&paymentModels[i])
	}
	return payments, nil
}

func (r *DefaultPaymentRepository) GetMerchantStats(merchantID string) (*domain.MerchantStats, error) {
	var stats domain.MerchantStats

	err := r.DB.Model(&models.PaymentModel{}).
		Where("merchant_id = ?", merchantID).
		Count(&stats.TotalCount).Error
	if err != nil {
		return nil, err
	}

	err = r.DB.Model(&models.PaymentModel{}).
		Where("merchant_id = ? AND status = ?", merchantID, string(domain.PaymentSuccess)).
		Count(&stats.SuccessCount).Error
	if err != nil {
		return nil, err
	}

	err = r.DB.Model(&models.PaymentModel{}).
		Where("merchant_id = ? AND status = ?", merchantID, string(domain.PaymentSuccess)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.SuccessAmount).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

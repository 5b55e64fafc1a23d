package mappers

import (
	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/models"
)

func ToGORMRefund(refund *domain.Refund) *models.RefundModel {
	return &models.RefundModel{
		ID:          refund.ID,
		PaymentID:   refund.PaymentID,
		MerchantID:  refund.MerchantID,
		Amount:      refund.Amount,
		Reason:      refund.Reason,
		Status:      string(refund.Status),
		CreatedAt:   refund.CreatedAt,
		ProcessedAt: refund.ProcessedAt,
	}
}

func ToDomainRefund(model *models.RefundModel) *domain.Refund {
	return &domain.Refund{
		ID:          model.ID,
		PaymentID:   model.PaymentID,
		MerchantID:  model.MerchantID,
		Amount:      model.Amount,
		Reason:      model.Reason,
		Status:      domain.RefundStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

package mappers

import (
	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/models"
)

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:               payment.ID,
		OrderID:          payment.OrderID,
		MerchantID:       payment.MerchantID,
		Amount:           payment.Amount,
		Currency:         payment.Currency,
		Method:           string(payment.Method),
		Status:           string(payment.Status),
		VPA:              payment.VPA,
		CardNetwork:      payment.CardNetwork,
		CardLast4:        payment.CardLast4,
		ErrorCode:        payment.ErrorCode,
		ErrorDescription: payment.ErrorDescription,
		Captured:         payment.Captured,
		CreatedAt:        payment.CreatedAt,
		UpdatedAt:        payment.UpdatedAt,
	}
}

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:               model.ID,
		OrderID:          model.OrderID,
		MerchantID:       model.MerchantID,
		Amount:           model.Amount,
		Currency:         model.Currency,
		Method:           domain.PaymentMethod(model.Method),
		Status:           domain.PaymentStatus(model.Status),
		VPA:              model.VPA,
		CardNetwork:      model.CardNetwork,
		CardLast4:        model.CardLast4,
		ErrorCode:        model.ErrorCode,
		ErrorDescription: model.ErrorDescription,
		Captured:         model.Captured,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

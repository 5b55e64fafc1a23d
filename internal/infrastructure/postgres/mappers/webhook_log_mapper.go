package mappers

import (
	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/models"
)

func ToGORMWebhookLog(log *domain.WebhookLog) *models.WebhookLogModel {
	return &models.WebhookLogModel{
		ID:            log.ID,
		MerchantID:    log.MerchantID,
		Event:         log.Event,
		Payload:       log.Payload,
		Status:        string(log.Status),
		Attempts:      log.Attempts,
		LastAttemptAt: log.LastAttemptAt,
		ResponseCode:  log.ResponseCode,
		ResponseBody:  log.ResponseBody,
	}
}

func ToDomainWebhookLog(model *models.WebhookLogModel) *domain.WebhookLog {
	return &domain.WebhookLog{
		ID:            model.ID,
		MerchantID:    model.MerchantID,
		Event:         model.Event,
		Payload:       model.Payload,
		Status:        domain.WebhookLogStatus(model.Status),
		Attempts:      model.Attempts,
		LastAttemptAt: model.LastAttemptAt,
		ResponseCode:  model.ResponseCode,
		ResponseBody:  model.ResponseBody,
	}
}

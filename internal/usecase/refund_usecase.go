package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/identifier"
	"github.com/paylane/payment-gateway/internal/infrastructure/metrics"
	refunddto "github.com/paylane/payment-gateway/internal/usecase/dto/refund"
)

type RefundUsecase interface {
	CreateRefund(input *refunddto.CreateRefundInput) (*domain.Refund, error)
	GetRefund(refundID string) (*domain.Refund, error)
	GetRefunds(merchantID string) ([]*domain.Refund, error)
}

type DefaultRefundUsecase struct {
	RefundRepo  domain.RefundRepository
	PaymentRepo domain.PaymentRepository
	Queue       domain.TaskQueue
	Metrics     *metrics.GatewayMetrics
}

func NewDefaultRefundUsecase(
	refundRepo domain.RefundRepository,
	paymentRepo domain.PaymentRepository,
	queue domain.TaskQueue,
	gatewayMetrics *metrics.GatewayMetrics,
) *DefaultRefundUsecase {
	return &DefaultRefundUsecase{
		RefundRepo:  refundRepo,
		PaymentRepo: paymentRepo,
		Queue:       queue,
		Metrics:     gatewayMetrics,
	}
}

// CreateRefund records a refund against a successful payment and queues it
// for processing. The sum of all refunds for a payment can never exceed the
// payment amount; the remaining balance accounts for refunds that are still
// pending.
func (uc *DefaultRefundUsecase) CreateRefund(input *refunddto.CreateRefundInput) (*domain.Refund, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	payment, err := uc.PaymentRepo.GetPaymentByID(input.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment.MerchantID != input.MerchantID {
		return nil, domain.ErrPaymentNotFound
	}
	if payment.Status != domain.PaymentSuccess {
		return nil, domain.ErrPaymentNotRefundable
	}

	alreadyRefunded, err := uc.RefundRepo.SumAmountByPaymentID(payment.ID)
	if err != nil {
		return nil, fmt.Errorf("sum refunded amount: %w", err)
	}
	if input.Amount > payment.Amount-alreadyRefunded {
		return nil, domain.ErrRefundAmountExceeded
	}

	refund := &domain.Refund{
		ID:         identifier.New(identifier.RefundPrefix),
		PaymentID:  payment.ID,
		MerchantID: payment.MerchantID,
		Amount:     input.Amount,
		Reason:     input.Reason,
		Status:     domain.RefundPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.RefundRepo.CreateRefund(refund); err != nil {
		return nil, fmt.Errorf("create refund: %w", err)
	}

	if err := uc.Queue.EnqueueRefundProcessing(domain.RefundTask{RefundID: refund.ID}); err != nil {
		return nil, fmt.Errorf("enqueue refund processing: %w", err)
	}

	uc.Metrics.RecordRefundCreated(refund.MerchantID)
	slog.Info("refund created",
		"refund_id", refund.ID,
		"payment_id", refund.PaymentID,
		"merchant_id", refund.MerchantID,
		"amount", refund.Amount,
	)

	return refund, nil
}

func (uc *DefaultRefundUsecase) GetRefund(refundID string) (*domain.Refund, error) {
	return uc.RefundRepo.GetRefundByID(refundID)
}

func (uc *DefaultRefundUsecase) GetRefunds(merchantID string) ([]*domain.Refund, error) {
	return uc.RefundRepo.GetRefundsByMerchantID(merchantID)
}

package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/identifier"
	"github.com/paylane/payment-gateway/internal/infrastructure/metrics"
	paymentdto "github.com/paylane/payment-gateway/internal/usecase/dto/payment"
	"github.com/paylane/payment-gateway/internal/validation"
)

type PaymentUsecase interface {
	CreatePayment(input *paymentdto.CreatePaymentInput) (*paymentdto.CreatePaymentOutput, error)
	CapturePayment(paymentID, merchantID string) (*domain.Payment, error)
	GetPayment(paymentID string) (*domain.Payment, error)
	GetTransactions(merchantID string) ([]*domain.Payment, error)
	GetDashboardStats(merchantID string) (*domain.MerchantStats, error)
}

type DefaultPaymentUsecase struct {
	PaymentRepo     domain.PaymentRepository
	OrderRepo       domain.OrderRepository
	IdempotencyRepo domain.IdempotencyRepository
	Queue           domain.TaskQueue
	Metrics         *metrics.GatewayMetrics
	IdempotencyTTL  time.Duration
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	orderRepo domain.OrderRepository,
	idempotencyRepo domain.IdempotencyRepository,
	queue domain.TaskQueue,
	gatewayMetrics *metrics.GatewayMetrics,
	idempotencyTTL time.Duration,
) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		PaymentRepo:     paymentRepo,
		OrderRepo:       orderRepo,
		IdempotencyRepo: idempotencyRepo,
		Queue:           queue,
		Metrics:         gatewayMetrics,
		IdempotencyTTL:  idempotencyTTL,
	}
}

// CreatePayment validates and records a payment attempt and hands it to the
// processing queue. When an idempotency key is supplied, a live cached
// response short-circuits everything: no new row, no new enqueue, the stored
// bytes are replayed as-is.
func (uc *DefaultPaymentUsecase) CreatePayment(input *paymentdto.CreatePaymentInput) (*paymentdto.CreatePaymentOutput, error) {
	if input.IdempotencyKey != "" {
		record, err := uc.IdempotencyRepo.Get(input.IdempotencyKey, input.MerchantID)
		if err == nil {
			var cached domain.Payment
			if err := json.Unmarshal(record.Response, &cached); err != nil {
				return nil, fmt.Errorf("decode cached payment response: %w", err)
			}
			uc.Metrics.RecordIdempotentReplay(input.MerchantID)
			slog.Info("payment creation replayed from idempotency cache",
				"merchant_id", input.MerchantID,
				"payment_id", cached.ID,
			)
			return &paymentdto.CreatePaymentOutput{
				Payment:  &cached,
				Body:     record.Response,
				Replayed: true,
			}, nil
		}
		if !errors.Is(err, domain.ErrIdempotencyMiss) {
			return nil, fmt.Errorf("idempotency lookup: %w", err)
		}
	}

	order, err := uc.OrderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, domain.ErrInvalidOrder
		}
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order.MerchantID != input.MerchantID {
		return nil, domain.ErrOrderMismatch
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:         identifier.New(identifier.PaymentPrefix),
		OrderID:    order.ID,
		MerchantID: order.MerchantID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		Method:     domain.PaymentMethod(input.Method),
		Status:     domain.PaymentPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	switch payment.Method {
	case domain.MethodUPI:
		if !validation.ValidateVPA(input.VPA) {
			return nil, domain.ErrInvalidVPA
		}
		payment.VPA = input.VPA
	case domain.MethodCard:
		if input.Card == nil || !validation.ValidateLuhn(input.Card.Number) {
			return nil, domain.ErrInvalidCard
		}
		if validation.CardExpired(input.Card.ExpiryMonth, input.Card.ExpiryYear, now) {
			return nil, domain.ErrExpiredCard
		}
		payment.CardNetwork = validation.CardNetwork(input.Card.Number)
		payment.CardLast4 = validation.Last4(input.Card.Number)
	default:
		return nil, domain.ErrUnsupportedMethod
	}

	if err := uc.PaymentRepo.CreatePayment(payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	err = uc.Queue.EnqueuePaymentProcessing(domain.PaymentTask{
		PaymentID: payment.ID,
		Method:    string(payment.Method),
	})
	if err != nil {
		return nil, fmt.Errorf("enqueue payment processing: %w", err)
	}

	body, err := json.Marshal(payment)
	if err != nil {
		return nil, fmt.Errorf("serialize payment response: %w", err)
	}

	if input.IdempotencyKey != "" {
		record := &domain.IdempotencyRecord{
			Key:        input.IdempotencyKey,
			MerchantID: input.MerchantID,
			Response:   body,
			ExpiresAt:  now.Add(uc.IdempotencyTTL),
			CreatedAt:  now,
		}
		if err := uc.IdempotencyRepo.Put(record); err != nil {
			return nil, fmt.Errorf("store idempotency record: %w", err)
		}
	}

	uc.Metrics.RecordPaymentCreated(payment.MerchantID, string(payment.Method), payment.Currency, payment.Amount)
	slog.Info("payment created",
		"payment_id", payment.ID,
		"order_id", payment.OrderID,
		"merchant_id", payment.MerchantID,
		"method", payment.Method,
	)

	return &paymentdto.CreatePaymentOutput{
		Payment:  payment,
		Body:     body,
		Replayed: false,
	}, nil
}

// CapturePayment flips the captured flag. Ownership is the only
// precondition; the payment's current status is deliberately not checked.
func (uc *DefaultPaymentUsecase) CapturePayment(paymentID, merchantID string) (*domain.Payment, error) {
	if err := uc.PaymentRepo.SetCaptured(paymentID, merchantID); err != nil {
		return nil, err
	}
	return uc.PaymentRepo.GetPaymentByID(paymentID)
}

func (uc *DefaultPaymentUsecase) GetPayment(paymentID string) (*domain.Payment, error) {
	return uc.PaymentRepo.GetPaymentByID(paymentID)
}

func (uc *DefaultPaymentUsecase) GetTransactions(merchantID string) ([]*domain.Payment, error) {
	return uc.PaymentRepo.GetPaymentsByMerchantID(merchantID)
}

func (uc *DefaultPaymentUsecase) GetDashboardStats(merchantID string) (*domain.MerchantStats, error) {
	return uc.PaymentRepo.GetMerchantStats(merchantID)
}

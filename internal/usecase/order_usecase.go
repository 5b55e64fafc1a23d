package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/identifier"
	orderdto "github.com/paylane/payment-gateway/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(input *orderdto.CreateOrderInput) (*domain.Order, error)
	GetOrder(orderID string) (*domain.Order, error)
	GetOrders(merchantID string) ([]*domain.Order, error)
}

type DefaultOrderUsecase struct {
	OrderRepo domain.OrderRepository
}

func NewDefaultOrderUsecase(orderRepo domain.OrderRepository) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{OrderRepo: orderRepo}
}

func (uc *DefaultOrderUsecase) CreateOrder(input *orderdto.CreateOrderInput) (*domain.Order, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	order := &domain.Order{
		ID:         identifier.New(identifier.OrderPrefix),
		MerchantID: input.MerchantID,
		Amount:     input.Amount,
		Currency:   input.Currency,
		Receipt:    input.Receipt,
		Notes:      input.Notes,
		Status:     domain.OrderCreated,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	slog.Info("order created",
		"order_id", order.ID,
		"merchant_id", order.MerchantID,
		"amount", order.Amount,
		"currency", order.Currency,
	)

	return order, nil
}

func (uc *DefaultOrderUsecase) GetOrder(orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(orderID)
}

func (uc *DefaultOrderUsecase) GetOrders(merchantID string) ([]*domain.Order, error) {
	return uc.OrderRepo.GetOrdersByMerchantID(merchantID)
}

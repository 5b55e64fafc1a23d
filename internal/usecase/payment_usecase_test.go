package usecase_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/usecase"
	paymentdto "github.com/paylane/payment-gateway/internal/usecase/dto/payment"
	"github.com/stretchr/testify/require"
)

const (
	testMerchantID  = "4f7c2b1a-9a64-4c11-b2c6-8f1d6a9e0b55"
	otherMerchantID = "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9"
)

func testOrder() *domain.Order {
	return &domain.Order{
		ID:         "order_test00000001",
		MerchantID: testMerchantID,
		Amount:     50000,
		Currency:   "INR",
		Status:     domain.OrderCreated,
		CreatedAt:  time.Now().UTC(),
	}
}

func newPaymentUsecase(orderRepo *fakeOrderRepo) (*usecase.DefaultPaymentUsecase, *fakePaymentRepo, *fakeIdempotencyRepo, *fakeTaskQueue) {
	paymentRepo := newFakePaymentRepo()
	idempotencyRepo := newFakeIdempotencyRepo()
	queue := &fakeTaskQueue{}
	uc := usecase.NewDefaultPaymentUsecase(
		paymentRepo,
		orderRepo,
		idempotencyRepo,
		queue,
		newTestMetrics(),
		24*time.Hour,
	)
	return uc, paymentRepo, idempotencyRepo, queue
}

func TestCreatePayment_UPI(t *testing.T) {
	t.Parallel()

	order := testOrder()
	uc, paymentRepo, _, queue := newPaymentUsecase(newFakeOrderRepo(order))

	output, err := uc.CreatePayment(&paymentdto.CreatePaymentInput{
		MerchantID: testMerchantID,
		OrderID:    order.ID,
		Method:     "upi",
		VPA:        "customer@icici",
	})
	require.NoError(t, err)
	require.False(t, output.Replayed)

	payment := output.Payment
	require.Equal(t, domain.PaymentPending, payment.Status)
	require.Equal(t, order.Amount, payment.Amount)
	require.Equal(t, order.Currency, payment.Currency)
	require.Equal(t, "customer@icici", payment.VPA)
	require.Contains(t, payment.ID, "pay_")

	require.Len(t, paymentRepo.payments, 1)
	require.Len(t, queue.paymentTasks, 1)
	require.Equal(t, payment.ID, queue.paymentTasks[0].PaymentID)
	require.Equal(t, "upi", queue.paymentTasks[0].Method)
}

func TestCreatePayment_Card(t *testing.T) {
	t.Parallel()

	order := testOrder()
	uc, paymentRepo, _, _ := newPaymentUsecase(newFakeOrderRepo(order))

	expiry := time.Now().AddDate(1, 0, 0)
	output, err := uc.CreatePayment(&paymentdto.CreatePaymentInput{
		MerchantID: testMerchantID,
		OrderID:    order.ID,
		Method:     "card",
		Card: &paymentdto.CardDetails{
			Number:      "4111 1111 1111 1111",
			CVV:         "123",
			ExpiryMonth: int(expiry.Month()),
			ExpiryYear:  expiry.Year(),
			Holder:      "A Customer",
		},
	})
	require.NoError(t, err)

	payment := output.Payment
	require.Equal(t, "visa", payment.CardNetwork)
	require.Equal(t, "1111", payment.CardLast4)

	// The PAN must never survive past validation.
	stored := paymentRepo.payments[payment.ID]
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "4111111111111111")
	require.NotContains(t, string(raw), "123")
}

func TestCreatePayment_ValidationErrors(t *testing.T) {
	t.Parallel()

	order := testOrder()
	lastMonth := time.Now().AddDate(0, -1, 0)

	tests := []struct {
		name    string
		input   *paymentdto.CreatePaymentInput
		wantErr error
	}{
		{
			name: "unknown_order",
			input: &paymentdto.CreatePaymentInput{
				MerchantID: testMerchantID,
				OrderID:    "order_doesnotexist",
				Method:     "upi",
				VPA:        "customer@icici",
			},
			wantErr: domain.ErrInvalidOrder,
		},
		{
			name: "foreign_order",
			input: &paymentdto.CreatePaymentInput{
				MerchantID: otherMerchantID,
				OrderID:    order.ID,
				Method:     "upi",
				VPA:        "customer@icici",
			},
			wantErr: domain.ErrOrderMismatch,
		},
		{
			name: "bad_vpa",
			input: &paymentdto.CreatePaymentInput{
				MerchantID: testMerchantID,
				OrderID:    order.ID,
				Method:     "upi",
				VPA:        "not-a-vpa",
			},
			wantErr: domain.ErrInvalidVPA,
		},
		{
			name: "missing_card",
			input: &paymentdto.CreatePaymentInput{
				MerchantID: testMerchantID,
				OrderID:    order.ID,
				Method:     "card",
			},
			wantErr: domain.ErrInvalidCard,
		},
		{
			name: "bad_luhn",
			input: &paymentdto.CreatePaymentInput{
				MerchantID: testMerchantID,
				OrderID:    order.ID,
				Method:     "card",
				Card: &paymentdto.CardDetails{
					Number:      "4111111111111112",
					ExpiryMonth: 12,
					ExpiryYear:  2099,
				},
			},
			wantErr: domain.ErrInvalidCard,
		},
		{
			name: "expired_card",
			input: &paymentdto.CreatePaymentInput{
				MerchantID: testMerchantID,
				OrderID:    order.ID,
				Method:     "card",
				Card: &paymentdto.CardDetails{
					Number:      "4111111111111111",
					ExpiryMonth: int(lastMonth.Month()),
					ExpiryYear:  lastMonth.Year(),
				},
			},
			wantErr: domain.ErrExpiredCard,
		},
		{
			name: "unsupported_method",
			input: &paymentdto.CreatePaymentInput{
				MerchantID: testMerchantID,
				OrderID:    order.ID,
				Method:     "netbanking",
			},
			wantErr: domain.ErrUnsupportedMethod,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc, paymentRepo, _, queue := newPaymentUsecase(newFakeOrderRepo(order))

			output, err := uc.CreatePayment(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, output)
			require.Empty(t, paymentRepo.payments)
			require.Empty(t, queue.paymentTasks)
		})
	}
}

func TestCreatePayment_IdempotentReplay(t *testing.T) {
	t.Parallel()

	order := testOrder()
	uc, paymentRepo, idempotencyRepo, queue := newPaymentUsecase(newFakeOrderRepo(order))

	input := &paymentdto.CreatePaymentInput{
		MerchantID:     testMerchantID,
		OrderID:        order.ID,
		Method:         "upi",
		VPA:            "customer@icici",
		IdempotencyKey: "retry-key-1",
	}

	first, err := uc.CreatePayment(input)
	require.NoError(t, err)
	require.False(t, first.Replayed)
	require.Equal(t, 1, idempotencyRepo.puts)

	second, err := uc.CreatePayment(input)
	require.NoError(t, err)
	require.True(t, second.Replayed)

	// Replay returns the stored bytes untouched and performs no new work.
	require.Equal(t, first.Body, second.Body)
	require.Equal(t, first.Payment.ID, second.Payment.ID)
	require.Len(t, paymentRepo.payments, 1)
	require.Len(t, queue.paymentTasks, 1)
	require.Equal(t, 1, idempotencyRepo.puts)
}

func TestCreatePayment_IdempotencyKeyScopedToMerchant(t *testing.T) {
	t.Parallel()

	orderA := testOrder()
	orderB := &domain.Order{
		ID:         "order_test00000002",
		MerchantID: otherMerchantID,
		Amount:     30000,
		Currency:   "INR",
		Status:     domain.OrderCreated,
		CreatedAt:  time.Now().UTC(),
	}
	uc, paymentRepo, _, _ := newPaymentUsecase(newFakeOrderRepo(orderA, orderB))

	first, err := uc.CreatePayment(&paymentdto.CreatePaymentInput{
		MerchantID:     testMerchantID,
		OrderID:        orderA.ID,
		Method:         "upi",
		VPA:            "customer@icici",
		IdempotencyKey: "shared-key",
	})
	require.NoError(t, err)

	second, err := uc.CreatePayment(&paymentdto.CreatePaymentInput{
		MerchantID:     otherMerchantID,
		OrderID:        orderB.ID,
		Method:         "upi",
		VPA:            "customer@okhdfc",
		IdempotencyKey: "shared-key",
	})
	require.NoError(t, err)
	require.False(t, second.Replayed)
	require.NotEqual(t, first.Payment.ID, second.Payment.ID)
	require.Len(t, paymentRepo.payments, 2)
}

func TestCreatePayment_ExpiredIdempotencyRecordMisses(t *testing.T) {
	t.Parallel()

	order := testOrder()
	uc, paymentRepo, idempotencyRepo, _ := newPaymentUsecase(newFakeOrderRepo(order))

	idempotencyRepo.records["stale-key|"+testMerchantID] = &domain.IdempotencyRecord{
		Key:        "stale-key",
		MerchantID: testMerchantID,
		Response:   json.RawMessage(`{"id":"pay_stale"}`),
		ExpiresAt:  time.Now().Add(-time.Minute),
	}

	output, err := uc.CreatePayment(&paymentdto.CreatePaymentInput{
		MerchantID:     testMerchantID,
		OrderID:        order.ID,
		Method:         "upi",
		VPA:            "customer@icici",
		IdempotencyKey: "stale-key",
	})
	require.NoError(t, err)
	require.False(t, output.Replayed)
	require.NotEqual(t, "pay_stale", output.Payment.ID)
	require.Len(t, paymentRepo.payments, 1)
}

func TestCapturePayment(t *testing.T) {
	t.Parallel()

	payment := &domain.Payment{
		ID:         "pay_capture000001",
		MerchantID: testMerchantID,
		Status:     domain.PaymentPending,
	}
	paymentRepo := newFakePaymentRepo(payment)
	uc := usecase.NewDefaultPaymentUsecase(
		paymentRepo, newFakeOrderRepo(), newFakeIdempotencyRepo(), &fakeTaskQueue{}, newTestMetrics(), time.Hour,
	)

	// Capture does not require a resolved payment.
	captured, err := uc.CapturePayment(payment.ID, testMerchantID)
	require.NoError(t, err)
	require.True(t, captured.Captured)

	_, err = uc.CapturePayment(payment.ID, otherMerchantID)
	require.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestGetDashboardStats(t *testing.T) {
	t.Parallel()

	paymentRepo := newFakePaymentRepo(
		&domain.Payment{ID: "pay_1", MerchantID: testMerchantID, Amount: 10000, Status: domain.PaymentSuccess},
		&domain.Payment{ID: "pay_2", MerchantID: testMerchantID, Amount: 20000, Status: domain.PaymentSuccess},
		&domain.Payment{ID: "pay_3", MerchantID: testMerchantID, Amount: 5000, Status: domain.PaymentFailed},
		&domain.Payment{ID: "pay_4", MerchantID: otherMerchantID, Amount: 7000, Status: domain.PaymentSuccess},
	)
	uc := usecase.NewDefaultPaymentUsecase(
		paymentRepo, newFakeOrderRepo(), newFakeIdempotencyRepo(), &fakeTaskQueue{}, newTestMetrics(), time.Hour,
	)

	stats, err := uc.GetDashboardStats(testMerchantID)
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalCount)
	require.Equal(t, int64(2), stats.SuccessCount)
	require.Equal(t, int64(30000), stats.SuccessAmount)
}

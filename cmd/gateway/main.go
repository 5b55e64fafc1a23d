package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/paylane/payment-gateway/internal/config"
	gatewayhttp "github.com/paylane/payment-gateway/internal/delivery/http"
	"github.com/paylane/payment-gateway/internal/delivery/http/handlers"
	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/paylane/payment-gateway/internal/infrastructure/kafka"
	"github.com/paylane/payment-gateway/internal/infrastructure/metrics"
	"github.com/paylane/payment-gateway/internal/infrastructure/migrate"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/repository"
	"github.com/paylane/payment-gateway/internal/infrastructure/queue"
	"github.com/paylane/payment-gateway/internal/usecase"
	"github.com/paylane/payment-gateway/internal/workers"

	"github.com/google/uuid"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.GatewayDB.MigrationsPath != "" {
		if err := migrate.Run(db, cfg.GatewayDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	gatewayMetrics := metrics.NewGatewayMetrics(prometheus.DefaultRegisterer)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisQueue.Addr,
		Password: cfg.RedisQueue.Password,
		DB:       cfg.RedisQueue.DB,
	}
	taskQueue := queue.NewAsynqTaskQueue(redisOpt, cfg.Processing.WebhookMaxAttempts)
	defer taskQueue.Close()

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaBus.Host, cfg.KafkaBus.Port)}
	publisher := kafka.NewGatewayEventPublisher(brokers)
	defer publisher.Close()

	// Init repositories
	merchantRepo := repository.NewDefaultMerchantRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	refundRepo := repository.NewDefaultRefundRepository(db)
	webhookLogRepo := repository.NewDefaultWebhookLogRepository(db)
	idempotencyRepo := repository.NewDefaultIdempotencyRepository(db)

	// Init usecases
	orderUsecase := usecase.NewDefaultOrderUsecase(orderRepo)
	paymentUsecase := usecase.NewDefaultPaymentUsecase(
		paymentRepo,
		orderRepo,
		idempotencyRepo,
		taskQueue,
		gatewayMetrics,
		cfg.Processing.IdempotencyTTL,
	)
	refundUsecase := usecase.NewDefaultRefundUsecase(refundRepo, paymentRepo, taskQueue, gatewayMetrics)
	webhookUsecase := usecase.NewDefaultWebhookUsecase(webhookLogRepo, taskQueue)

	if cfg.Env == "local" {
		seedDevMerchant(merchantRepo)
	}

	// Worker handlers
	paymentProcessor := &workers.PaymentProcessor{
		Payments:        paymentRepo,
		Queue:           taskQueue,
		Publisher:       publisher,
		Metrics:         gatewayMetrics,
		Delay:           cfg.Processing.PaymentDelay,
		UPISuccessRate:  cfg.Processing.UPISuccessRate,
		CardSuccessRate: cfg.Processing.CardSuccessRate,
		EventsTopic:     cfg.KafkaBus.EventsTopic,
	}
	refundProcessor := &workers.RefundProcessor{
		Refunds:     refundRepo,
		Queue:       taskQueue,
		Publisher:   publisher,
		Metrics:     gatewayMetrics,
		Delay:       cfg.Processing.RefundDelay,
		EventsTopic: cfg.KafkaBus.EventsTopic,
	}
	webhookDeliverer := workers.NewWebhookDeliverer(
		merchantRepo,
		webhookLogRepo,
		gatewayMetrics,
		cfg.Processing.WebhookTimeout,
	)

	workerServer := queue.NewServer(redisOpt, queue.ServerConfig{
		Concurrency: cfg.RedisQueue.Concurrency,
		BackoffBase: cfg.Processing.WebhookBackoffBase,
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypePaymentProcess, paymentProcessor.ProcessTask)
	mux.HandleFunc(queue.TypeRefundProcess, refundProcessor.ProcessTask)
	mux.HandleFunc(queue.TypeWebhookDeliver, webhookDeliverer.ProcessTask)

	go func() {
		if err := workerServer.Run(mux); err != nil {
			log.Fatalf("worker server failed: %v", err)
		}
	}()

	// Expired idempotency records are garbage collected in the background;
	// reads already ignore them.
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			deleted, err := idempotencyRepo.DeleteExpired()
			if err != nil {
				slog.Error("idempotency gc failed", "error", err.Error())
				continue
			}
			if deleted > 0 {
				slog.Info("idempotency gc", "deleted", deleted)
			}
		}
	}()

	router := gatewayhttp.NewRouter(
		handlers.NewOrderHandler(orderUsecase),
		handlers.NewPaymentHandler(paymentUsecase),
		handlers.NewRefundHandler(refundUsecase),
		handlers.NewWebhookHandler(webhookUsecase),
	)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	go func() {
		log.Printf("gateway HTTP server started on %s\n", addr)
		if err := router.Run(addr); err != nil {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	workerServer.Shutdown()
}

// seedDevMerchant makes sure local runs have a merchant to work with.
func seedDevMerchant(merchants domain.MerchantRepository) {
	const devMerchantEnv = "DEV_MERCHANT_ID"

	id := os.Getenv(devMerchantEnv)
	if id == "" {
		id = uuid.New().String()
	}

	if _, err := merchants.GetMerchantByID(id); err == nil {
		return
	}

	err := merchants.CreateMerchant(&domain.Merchant{
		ID:            id,
		Name:          "Dev Merchant",
		WebhookURL:    os.Getenv("DEV_WEBHOOK_URL"),
		WebhookSecret: "dev-webhook-secret",
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		slog.Error("failed to seed dev merchant", "error", err.Error())
		return
	}
	log.Printf("seeded dev merchant %s\n", id)
}

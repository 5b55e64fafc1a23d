package postgres

import (
	"log"

	"github.com/paylane/payment-gateway/internal/config"
	"github.com/paylane/payment-gateway/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.GatewayConfig) *gorm.DB {
	dsn := cfg.GatewayDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.MerchantModel{},
		&models.OrderModel{},
		&models.PaymentModel{},
		&models.RefundModel{},
		&models.WebhookLogModel{},
		&models.IdempotencyRecordModel{},
	)

	return db
}

package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type GatewayConfig struct {
	Env        string `yaml:"env" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	GatewayDB  `yaml:"gateway_db"`
	RedisQueue `yaml:"redis_queue"`
	KafkaBus   `yaml:"kafka_bus"`
	LogConfig  `yaml:"log_config"`
	Processing `yaml:"processing"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type GatewayDB struct {
	Dsn            string `yaml:"dsn" env:"GATEWAY_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type RedisQueue struct {
	Addr        string `yaml:"addr" env-default:"localhost:6379"`
	Password    string `yaml:"password" env:"REDIS_PASSWORD"`
	DB          int    `yaml:"db" env-default:"0"`
	Concurrency int    `yaml:"concurrency" env-default:"10"`
}

type KafkaBus struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	EventsTopic string `yaml:"events_topic" env-default:"gateway-events"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
}

// Processing holds every knob of the simulated bank leg and the webhook
// retry policy so tests can collapse delays and force outcomes.
type Processing struct {
	PaymentDelay       time.Duration `yaml:"payment_delay" env-default:"5s"`
	RefundDelay        time.Duration `yaml:"refund_delay" env-default:"3s"`
	UPISuccessRate     float64       `yaml:"upi_success_rate" env-default:"0.90"`
	CardSuccessRate    float64       `yaml:"card_success_rate" env-default:"0.95"`
	WebhookMaxAttempts int           `yaml:"webhook_max_attempts" env-default:"5"`
	WebhookBackoffBase time.Duration `yaml:"webhook_backoff_base" env-default:"60s"`
	WebhookTimeout     time.Duration `yaml:"webhook_timeout" env-default:"5s"`
	IdempotencyTTL     time.Duration `yaml:"idempotency_ttl" env-default:"24h"`
}

func MustLoad() *GatewayConfig {
	configPath := os.Getenv("GATEWAY_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("GATEWAY_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg GatewayConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}

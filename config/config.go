package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Warn("Error can't get the environment variables by file, using process environment")
	}
	if err := env.Parse(&Config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	NATS
	Kafka
	Fraud
	Resilience
	Settlement
}

type DB struct {
	HOST     string `env:"DB_HOST" envDefault:"localhost"`
	USER     string `env:"DB_USER" envDefault:"postgres"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME" envDefault:"settlement"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type APP struct {
	PORT            string        `env:"APP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	RecentLogs      int           `env:"APP_RECENT_LOGS" envDefault:"200"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type NATS struct {
	URL            string        `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	ClientName     string        `env:"NATS_CLIENT_NAME" envDefault:"settlement-pipeline"`
	FraudSubject   string        `env:"NATS_FRAUD_SUBJECT" envDefault:"fraud.check"`
	FraudQueue     string        `env:"NATS_FRAUD_QUEUE" envDefault:"fraud-responders"`
	RequestTimeout time.Duration `env:"NATS_TIMEOUT" envDefault:"2000ms"`
	DrainTimeout   time.Duration `env:"NATS_DRAIN_TIMEOUT" envDefault:"5s"`
}

type Kafka struct {
	Brokers              []string      `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	AuthorizedTopic      string        `env:"KAFKA_AUTHORIZED_TOPIC" envDefault:"payments.authorized"`
	DLQTopic             string        `env:"KAFKA_DLQ_TOPIC" envDefault:"payments.authorized.dlq"`
	StagingConsumerGroup string        `env:"KAFKA_STAGING_GROUP_ID" envDefault:"settlement-staging"`
	StagingWorkers       int           `env:"KAFKA_STAGING_WORKERS" envDefault:"3"`
	PublishTimeout       time.Duration `env:"KAFKA_PUBLISH_TIMEOUT" envDefault:"5s"`
	CommitTimeout        time.Duration `env:"KAFKA_COMMIT_TIMEOUT" envDefault:"5s"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Fraud struct {
	AmountThreshold   decimal.Decimal `env:"FRAUD_AMOUNT_THRESHOLD" envDefault:"1000"`
	HighRiskCountries []string        `env:"FRAUD_HIGH_RISK_COUNTRIES" envDefault:"XX,YY,ZZ" envSeparator:","`
}

type Resilience struct {
	FallbackMaxAmount decimal.Decimal `env:"RESILIENCE_FALLBACK_MAX_AMOUNT" envDefault:"500"`
	FailureRate       float64         `env:"RESILIENCE_FAILURE_RATE" envDefault:"50"`
	MinimumCalls      uint32          `env:"RESILIENCE_MINIMUM_CALLS" envDefault:"5"`
	Window            time.Duration   `env:"RESILIENCE_WINDOW" envDefault:"10s"`
	OpenWait          time.Duration   `env:"RESILIENCE_OPEN_WAIT" envDefault:"5s"`
	HalfOpenCalls     uint32          `env:"RESILIENCE_HALF_OPEN_CALLS" envDefault:"3"`
}

type Settlement struct {
	ChunkSize    int           `env:"SETTLEMENT_CHUNK_SIZE" envDefault:"100"`
	SkipLimit    int           `env:"SETTLEMENT_SKIP_LIMIT" envDefault:"10"`
	OutputDir    string        `env:"SETTLEMENT_OUTPUT_DIR" envDefault:"./output"`
	StoreTimeout time.Duration `env:"SETTLEMENT_STORE_TIMEOUT" envDefault:"30s"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

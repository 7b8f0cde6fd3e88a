package config_test

import (
	"testing"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/config"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.APP.PORT)
	assert.Equal(t, "fraud.check", cfg.NATS.FraudSubject)
	assert.Equal(t, 2000*time.Millisecond, cfg.NATS.RequestTimeout)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "payments.authorized", cfg.Kafka.AuthorizedTopic)
	assert.Equal(t, 3, cfg.Kafka.StagingWorkers)
	assert.True(t, decimal.NewFromInt(1000).Equal(cfg.Fraud.AmountThreshold))
	assert.Equal(t, []string{"XX", "YY", "ZZ"}, cfg.Fraud.HighRiskCountries)
	assert.True(t, decimal.NewFromInt(500).Equal(cfg.Resilience.FallbackMaxAmount))
	assert.Equal(t, uint32(5), cfg.Resilience.MinimumCalls)
	assert.Equal(t, 100, cfg.Settlement.ChunkSize)
	assert.Equal(t, 10, cfg.Settlement.SkipLimit)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("FRAUD_AMOUNT_THRESHOLD", "2500.50")
	t.Setenv("FRAUD_HIGH_RISK_COUNTRIES", "KP,IR")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("SETTLEMENT_CHUNK_SIZE", "25")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "2500.5", cfg.Fraud.AmountThreshold.String())
	assert.Equal(t, []string{"KP", "IR"}, cfg.Fraud.HighRiskCountries)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 25, cfg.Settlement.ChunkSize)
}

func TestNew_InvalidValue(t *testing.T) {
	t.Setenv("SETTLEMENT_CHUNK_SIZE", "lots")

	_, err := config.New()
	assert.Error(t, err)
}

func TestGetRetryConfig(t *testing.T) {
	k := config.Kafka{
		RetryMaxAttempts: 3,
		RetryBaseDelay:   10 * time.Millisecond,
		RetryMaxDelay:    time.Second,
		RetryJitter:      true,
	}

	assert.Equal(t, config.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   10 * time.Millisecond,
		MaxDelay:    time.Second,
		Jitter:      true,
	}, k.GetRetryConfig())
}

func TestNewLogger_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, config.APP{LogLevel: "debug"}.NewLogger().GetLevel())
	assert.Equal(t, logrus.InfoLevel, config.APP{LogLevel: "chatty"}.NewLogger().GetLevel())
}

func TestDSN(t *testing.T) {
	db := config.DB{HOST: "h", USER: "u", PASSWORD: "p", NAME: "n", PORT: "5432", SSLMODE: "disable"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=5432 sslmode=disable", db.DSN())
}

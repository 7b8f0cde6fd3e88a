package backoff

import (
	"math"
	"math/rand"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/config"
)

// Delay returns the wait before retry number attempt (0-based): BaseDelay
// doubled per attempt, capped at MaxDelay, with ±15% jitter when enabled.
func Delay(cfg config.RetryConfig, attempt int) time.Duration {
	delay := cfg.MaxDelay
	if attempt < 32 {
		delay = time.Duration(math.Pow(2, float64(attempt))) * cfg.BaseDelay
	}

	if delay > cfg.MaxDelay || delay <= 0 {
		delay = cfg.MaxDelay
	}

	if cfg.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

// WithDefaults fills unset fields with the values the publisher has always used.
func WithDefaults(cfg config.RetryConfig) config.RetryConfig {
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.BaseDelay == 0 {
		cfg.BaseDelay = 100 * time.Millisecond
	}
	if cfg.MaxDelay == 0 {
		cfg.MaxDelay = 10 * time.Second
	}
	return cfg
}

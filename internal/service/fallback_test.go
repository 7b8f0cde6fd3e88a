package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/service"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/service/mocks"
	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFraudFallback(t *testing.T) {
	tests := []struct {
		amount   string
		approved bool
		score    int
		level    models.RiskLevel
		reason   string
	}{
		{"100.00", true, 50, models.RiskFallbackLow, "Fallback approved (low amount)"},
		{"500.00", true, 50, models.RiskFallbackLow, "Fallback approved (low amount)"},
		{"500.01", false, 100, models.RiskFallbackHigh, "Fallback rejected (amount exceeds safety threshold: 500.00)"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			recorder := mocks.NewMockRecorder(t)
			log, hook := logtest.NewNullLogger()
			fallback := service.NewFraudFallback(decimal.NewFromInt(500), recorder, log)
			recorder.EXPECT().RecordFallback(tt.level).Return().Once()

			cause := fmt.Errorf("%w: open", models.ErrCircuitOpen)
			resp, err := fallback(context.Background(), models.FraudCheckRequest{
				TransactionID: "tx-1",
				Amount:        decimal.RequireFromString(tt.amount),
			}, cause)

			require.NoError(t, err)
			assert.Equal(t, "tx-1", resp.TransactionID)
			assert.Equal(t, tt.approved, resp.Approved)
			assert.Equal(t, tt.score, resp.RiskScore)
			assert.Equal(t, tt.level, resp.RiskLevel)
			assert.Equal(t, tt.reason, resp.Reason)
			assert.Equal(t, "fraud check short-circuited, using fallback", hook.LastEntry().Message)
		})
	}
}

func TestFraudFallback_LogsCause(t *testing.T) {
	recorder := mocks.NewMockRecorder(t)
	log, hook := logtest.NewNullLogger()
	recorder.EXPECT().RecordFallback(models.RiskFallbackLow).Return().Once()

	_, err := service.NewFraudFallback(decimal.NewFromInt(500), recorder, log)(
		context.Background(),
		models.FraudCheckRequest{TransactionID: "tx-2", Amount: decimal.NewFromInt(1)},
		errors.New("nats: timeout"),
	)

	require.NoError(t, err)
	assert.Contains(t, hook.LastEntry().Message, "nats: timeout")
}

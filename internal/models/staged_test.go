package models_test

import (
	"testing"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to models.ProcessingStatus
		want     bool
	}{
		{models.StatusPending, models.StatusInProgress, true},
		{models.StatusPending, models.StatusFailed, true},
		{models.StatusInProgress, models.StatusProcessed, true},
		{models.StatusPending, models.StatusProcessed, false},
		{models.StatusInProgress, models.StatusFailed, false},
		{models.StatusProcessed, models.StatusPending, false},
		{models.StatusFailed, models.StatusInProgress, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewStagedRecord(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 11, 12, 123456789, time.FixedZone("X", 3600))
	event := models.AuthorizedEvent{
		TransactionID:  "tx-1",
		PayerID:        "payer",
		PayeeID:        "payee",
		Amount:         decimal.RequireFromString("12.34"),
		Currency:       "USD",
		IssuerBankID:   "BANK_A",
		AcquirerBankID: "BANK_B",
		AuthorizedAt:   now,
	}

	rec := models.NewStagedRecord(event, now)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "tx-1", rec.TransactionID)
	assert.Equal(t, models.StatusPending, rec.ProcessingStatus)
	assert.Equal(t, int64(0), rec.Version)
	assert.Nil(t, rec.BatchID)
	assert.Equal(t, time.UTC, rec.CreatedAt.Location())
	assert.Equal(t, 123456000, rec.CreatedAt.Nanosecond())
}

func TestTransitionTo(t *testing.T) {
	rec := models.NewStagedRecord(models.AuthorizedEvent{TransactionID: "tx-2"}, time.Now())

	require.NoError(t, rec.TransitionTo(models.StatusInProgress, time.Now()))
	assert.Equal(t, int64(1), rec.Version)
	assert.Nil(t, rec.ProcessedAt)

	require.NoError(t, rec.TransitionTo(models.StatusProcessed, time.Now()))
	assert.Equal(t, int64(2), rec.Version)
	assert.NotNil(t, rec.ProcessedAt)

	err := rec.TransitionTo(models.StatusPending, time.Now())
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	assert.Equal(t, int64(2), rec.Version)
}

func TestSettlementRecord_CSVRow(t *testing.T) {
	rec := models.SettlementRecord{
		TransactionID:  "tx-3",
		IssuerBankID:   "BANK_A",
		AcquirerBankID: "BANK_B",
		Amount:         decimal.RequireFromString("250"),
		Currency:       "EUR",
		SettlementDate: time.Date(2026, 1, 2, 23, 0, 0, 0, time.UTC),
		Status:         models.SettlementStatusSettled,
	}

	assert.Equal(t, []string{"tx-3", "BANK_A", "BANK_B", "250.00", "EUR", "2026-01-02", "SETTLED"}, rec.CSVRow())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"12.5", "USD", "12.50"},
		{"10.5000", "USD", "10.50"},
		{"10.005", "USD", "10.005"},
		{"1500", "JPY", "1500"},
		{"1500.5", "JPY", "1500.5"},
		{"3", "KWD", "3.000"},
		{"1.2345", "KWD", "1.2345"},
	}

	for _, tt := range tests {
		t.Run(tt.amount+" "+tt.currency, func(t *testing.T) {
			assert.Equal(t, tt.want, models.FormatAmount(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestNewErrorFraudResponse(t *testing.T) {
	resp := models.NewErrorFraudResponse("tx-4", "boom")

	assert.False(t, resp.Approved)
	assert.Equal(t, 100, resp.RiskScore)
	assert.Equal(t, models.RiskError, resp.RiskLevel)
	assert.Equal(t, "boom", resp.Reason)
	assert.Zero(t, resp.ProcessingTimeMs)
}

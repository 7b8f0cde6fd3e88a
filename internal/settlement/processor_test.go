package settlement_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/settlement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staged() models.StagedRecord {
	return models.StagedRecord{
		TransactionID:  "tx-1",
		IssuerBankID:   "BANK_A",
		AcquirerBankID: "BANK_B",
		Amount:         decimal.RequireFromString("42.10"),
		Currency:       "EUR",
	}
}

func TestProcess_MapsToSettlement(t *testing.T) {
	now := time.Date(2026, 6, 2, 22, 30, 0, 0, time.UTC)
	p := settlement.NewSettlementProcessor(func() time.Time { return now })

	out, err := p.Process(staged())

	require.NoError(t, err)
	assert.Equal(t, "tx-1", out.TransactionID)
	assert.Equal(t, "BANK_A", out.IssuerBankID)
	assert.Equal(t, "BANK_B", out.AcquirerBankID)
	assert.Equal(t, "EUR", out.Currency)
	assert.Equal(t, models.SettlementStatusSettled, out.Status)
	assert.Equal(t, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), out.SettlementDate)
}

func TestProcess_KeepsFullAmountPrecision(t *testing.T) {
	p := settlement.NewSettlementProcessor(nil)
	rec := staged()
	rec.Amount = decimal.RequireFromString("10.005")
	rec.Currency = "USD"

	out, err := p.Process(rec)

	require.NoError(t, err)
	assert.True(t, rec.Amount.Equal(out.Amount))
	assert.Equal(t, "10.005", out.CSVRow()[3])
}

func TestProcess_InvalidRecords(t *testing.T) {
	p := settlement.NewSettlementProcessor(nil)
	tests := map[string]func(*models.StagedRecord){
		"zero amount":      func(r *models.StagedRecord) { r.Amount = decimal.Zero },
		"bad currency":     func(r *models.StagedRecord) { r.Currency = "EURO" },
		"missing issuer":   func(r *models.StagedRecord) { r.IssuerBankID = "" },
		"missing acquirer": func(r *models.StagedRecord) { r.AcquirerBankID = "" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			rec := staged()
			mutate(&rec)

			_, err := p.Process(rec)

			var perr *settlement.ProcessingError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "tx-1", perr.TransactionID)
		})
	}
}

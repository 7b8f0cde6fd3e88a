package settlement_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/settlement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id string) models.SettlementRecord {
	return models.SettlementRecord{
		TransactionID:  id,
		IssuerBankID:   "BANK_A",
		AcquirerBankID: "BANK_B",
		Amount:         decimal.RequireFromString("10.5"),
		Currency:       "USD",
		SettlementDate: base,
		Status:         models.SettlementStatusSettled,
	}
}

func TestCreateFile_NameAndHeader(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 6, 1, 13, 4, 5, 0, time.UTC)

	w, err := settlement.CreateFile(filepath.Join(dir, "out"), "b/1", now)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, filepath.Join(dir, "out", "settlement_b_1_20260601_130405.csv"), w.Path())
	assert.Equal(t, []string{"TransactionId,IssuerBankId,AcquirerBankId,Amount,Currency,SettlementDate,Status"}, fileLines(t, w.Path()))
}

func TestCreateFile_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()

	first, err := settlement.CreateFile(dir, "batch", base)
	require.NoError(t, err)
	defer first.Close()
	second, err := settlement.CreateFile(dir, "batch", base)
	require.NoError(t, err)
	defer second.Close()

	assert.NotEqual(t, first.Path(), second.Path())
	assert.Equal(t, filepath.Join(dir, "settlement_batch_20260601_080000_1.csv"), second.Path())
}

func TestFileWriter_RollbackDropsUncommittedRows(t *testing.T) {
	w, err := settlement.CreateFile(t.TempDir(), "batch", base)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Append([]models.SettlementRecord{line("tx-1"), line("tx-2")}))
	require.NoError(t, w.Sync())
	require.NoError(t, w.Commit())

	require.NoError(t, w.Append([]models.SettlementRecord{line("tx-3")}))
	require.NoError(t, w.Rollback())
	require.NoError(t, w.Append([]models.SettlementRecord{line("tx-4")}))
	require.NoError(t, w.Commit())

	lines := fileLines(t, w.Path())
	require.Len(t, lines, 4)
	assert.Equal(t, "tx-1,BANK_A,BANK_B,10.50,USD,2026-06-01,SETTLED", lines[1])
	assert.Equal(t, "tx-4,BANK_A,BANK_B,10.50,USD,2026-06-01,SETTLED", lines[3])

	info, err := os.Stat(w.Path())
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

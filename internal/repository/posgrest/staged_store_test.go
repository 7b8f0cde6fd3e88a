package posgrest_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func record(txID, issuer string, offset time.Duration) models.StagedRecord {
	return models.NewStagedRecord(models.AuthorizedEvent{
		TransactionID:  txID,
		PayerID:        "payer",
		PayeeID:        "payee",
		Amount:         decimal.RequireFromString("12.50"),
		Currency:       "USD",
		IssuerBankID:   issuer,
		AcquirerBankID: "ACQ",
		AuthorizedAt:   base,
	}, base.Add(offset))
}

func newStore(t *testing.T) *posgrest.StagedStore {
	return posgrest.NewStagedStore(testutil.OpenDB(t, &models.StagedRecord{}))
}

func TestCreate_AndExists(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	rec := record("tx-1", "BANK_A", 0)

	exists, err := store.ExistsByTransactionID(ctx, "tx-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Create(ctx, &rec))

	exists, err = store.ExistsByTransactionID(ctx, "tx-1")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := store.GetByTransactionID(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.ProcessingStatus)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got.Amount))
}

func TestCreate_DuplicateTransaction(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	first := record("tx-1", "BANK_A", 0)
	second := record("tx-1", "BANK_B", time.Second)

	require.NoError(t, store.Create(ctx, &first))
	err := store.Create(ctx, &second)

	assert.ErrorIs(t, err, models.ErrDuplicateTransaction)
	got, err := store.GetByTransactionID(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, "BANK_A", got.IssuerBankID)
}

func TestClaimPending_OrderAndExclusion(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	for _, r := range []models.StagedRecord{
		record("tx-b2", "BANK_B", 2*time.Second),
		record("tx-a2", "BANK_A", 2*time.Second),
		record("tx-b1", "BANK_B", time.Second),
		record("tx-a1", "BANK_A", time.Second),
	} {
		r := r
		require.NoError(t, store.Create(ctx, &r))
	}

	var claimed []models.StagedRecord
	require.NoError(t, store.Transaction(ctx, func(tx *posgrest.StagedStore) error {
		var err error
		claimed, err = tx.ClaimPending(ctx, 3, nil)
		return err
	}))

	require.Len(t, claimed, 3)
	assert.Equal(t, []string{"tx-a1", "tx-a2", "tx-b1"}, []string{claimed[0].TransactionID, claimed[1].TransactionID, claimed[2].TransactionID})

	rest, err := store.ClaimPending(ctx, 10, []string{claimed[0].ID, claimed[1].ID})
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, "tx-b1", rest[0].TransactionID)
	assert.Equal(t, "tx-b2", rest[1].TransactionID)
}

func TestTransition_VersionedUpdate(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	rec := record("tx-1", "BANK_A", 0)
	require.NoError(t, store.Create(ctx, &rec))
	batch := "batch-1"

	require.NoError(t, store.Transition(ctx, &rec, models.StatusInProgress, &batch, base))
	assert.Equal(t, int64(1), rec.Version)
	require.NoError(t, store.Transition(ctx, &rec, models.StatusProcessed, nil, base))
	assert.Equal(t, int64(2), rec.Version)

	got, err := store.GetByTransactionID(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessed, got.ProcessingStatus)
	assert.Equal(t, int64(2), got.Version)
	require.NotNil(t, got.BatchID)
	assert.Equal(t, "batch-1", *got.BatchID)
	assert.NotNil(t, got.ProcessedAt)
}

func TestTransition_StaleVersionConflicts(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	rec := record("tx-1", "BANK_A", 0)
	require.NoError(t, store.Create(ctx, &rec))

	stale := rec
	require.NoError(t, store.Transition(ctx, &rec, models.StatusInProgress, nil, base))

	err := store.Transition(ctx, &stale, models.StatusFailed, nil, base)

	assert.ErrorIs(t, err, models.ErrPersistenceConflict)
	assert.Equal(t, int64(0), stale.Version)
	got, err := store.GetByTransactionID(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got.ProcessingStatus)
}

func TestTransition_InvalidEdge(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	rec := record("tx-1", "BANK_A", 0)
	require.NoError(t, store.Create(ctx, &rec))

	err := store.Transition(ctx, &rec, models.StatusProcessed, nil, base)

	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestTransaction_RollsBack(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	rec := record("tx-1", "BANK_A", 0)
	require.NoError(t, store.Create(ctx, &rec))

	err := store.Transaction(ctx, func(tx *posgrest.StagedStore) error {
		r := rec
		if err := tx.Transition(ctx, &r, models.StatusInProgress, nil, base); err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})

	assert.EqualError(t, err, "abort")
	got, err := store.GetByTransactionID(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.ProcessingStatus)
	assert.Equal(t, int64(0), got.Version)
}

func TestCountsAndIssuers(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	for i, issuer := range []string{"BANK_B", "BANK_A", "BANK_A"} {
		r := record(fmt.Sprintf("tx-%d", i), issuer, time.Duration(i)*time.Second)
		require.NoError(t, store.Create(ctx, &r))
	}
	failed := record("tx-9", "BANK_C", 0)
	require.NoError(t, store.Create(ctx, &failed))
	require.NoError(t, store.Transition(ctx, &failed, models.StatusFailed, nil, base))

	counts, err := store.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[models.ProcessingStatus]int64{models.StatusPending: 3, models.StatusFailed: 1}, counts)

	n, err := store.CountByIssuerAndStatus(ctx, "BANK_A", models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	issuers, err := store.DistinctIssuers(ctx, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, []string{"BANK_A", "BANK_B"}, issuers)
}

package posgrest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StagedStore persists staged transactions. A store obtained from
// Transaction runs every call inside that transaction.
type StagedStore struct {
	db *gorm.DB
}

func NewStagedStore(db *gorm.DB) *StagedStore {
	return &StagedStore{db: db}
}

func (s *StagedStore) Transaction(ctx context.Context, fn func(tx *StagedStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&StagedStore{db: tx})
	})
}

func (s *StagedStore) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.StagedRecord{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("error checking transaction %s: %w", transactionID, err)
	}
	return count > 0, nil
}

// Create inserts rec in its own transaction. Losing a race on the unique
// transaction id is reported as models.ErrDuplicateTransaction.
func (s *StagedStore) Create(ctx context.Context, rec *models.StagedRecord) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(rec).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", models.ErrDuplicateTransaction, rec.TransactionID)
	}
	if err != nil {
		return fmt.Errorf("error staging transaction %s: %w", rec.TransactionID, err)
	}
	return nil
}

func (s *StagedStore) GetByTransactionID(ctx context.Context, transactionID string) (*models.StagedRecord, error) {
	var rec models.StagedRecord
	if err := s.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// ClaimPending locks up to limit PENDING records in settlement order,
// skipping rows locked by other runs and the ids in exclude. Call it inside
// Transaction so the locks last until commit.
func (s *StagedStore) ClaimPending(ctx context.Context, limit int, exclude []string) ([]models.StagedRecord, error) {
	q := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("processing_status = ?", models.StatusPending)
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}

	var recs []models.StagedRecord
	err := q.Order("issuer_bank_id").Order("created_at").Order("id").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("error claiming pending records: %w", err)
	}
	return recs, nil
}

// Transition moves rec to next only if the stored row still has rec's status
// and version. A stale rec yields models.ErrPersistenceConflict.
func (s *StagedStore) Transition(ctx context.Context, rec *models.StagedRecord, next models.ProcessingStatus, batchID *string, now time.Time) error {
	from, version := rec.ProcessingStatus, rec.Version
	updated := *rec
	if err := updated.TransitionTo(next, now); err != nil {
		return err
	}

	updates := map[string]interface{}{
		"processing_status": next,
		"version":           gorm.Expr("version + 1"),
	}
	if batchID != nil {
		updates["batch_id"] = *batchID
		updated.BatchID = batchID
	}
	if updated.ProcessedAt != nil {
		updates["processed_at"] = *updated.ProcessedAt
	}

	res := s.db.WithContext(ctx).
		Model(&models.StagedRecord{}).
		Where("id = ? AND version = ? AND processing_status = ?", rec.ID, version, from).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("error updating transaction %s: %w", rec.TransactionID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: transaction %s at version %d", models.ErrPersistenceConflict, rec.TransactionID, version)
	}

	*rec = updated
	return nil
}

func (s *StagedStore) CountByStatus(ctx context.Context) (map[models.ProcessingStatus]int64, error) {
	var rows []struct {
		ProcessingStatus models.ProcessingStatus
		Total            int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.StagedRecord{}).
		Select("processing_status, count(*) as total").
		Group("processing_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error counting staged records: %w", err)
	}

	counts := make(map[models.ProcessingStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.ProcessingStatus] = r.Total
	}
	return counts, nil
}

func (s *StagedStore) CountByIssuerAndStatus(ctx context.Context, issuerBankID string, status models.ProcessingStatus) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.StagedRecord{}).
		Where("issuer_bank_id = ? AND processing_status = ?", issuerBankID, status).
		Count(&count).Error
	return count, err
}

func (s *StagedStore) DistinctIssuers(ctx context.Context, status models.ProcessingStatus) ([]string, error) {
	var issuers []string
	err := s.db.WithContext(ctx).
		Model(&models.StagedRecord{}).
		Where("processing_status = ?", status).
		Distinct("issuer_bank_id").
		Order("issuer_bank_id").
		Pluck("issuer_bank_id", &issuers).Error
	return issuers, err
}

package settlement

import (
	"context"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/repository/posgrest"
)

// Store is the staging persistence a run needs. The Store handed to fn by
// Transaction is bound to that transaction.
type Store interface {
	Transaction(ctx context.Context, fn func(tx Store) error) error
	ClaimPending(ctx context.Context, limit int, exclude []string) ([]models.StagedRecord, error)
	Transition(ctx context.Context, rec *models.StagedRecord, next models.ProcessingStatus, batchID *string, now time.Time) error
}

type gormStore struct {
	*posgrest.StagedStore
}

func (s gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.StagedStore.Transaction(ctx, func(tx *posgrest.StagedStore) error {
		return fn(gormStore{StagedStore: tx})
	})
}

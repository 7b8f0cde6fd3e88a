package posgrest_test

import (
	"context"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepository_JobExecutionLifecycle(t *testing.T) {
	repo := posgrest.New[models.JobExecution](testutil.OpenDB(t, &models.JobExecution{}))
	ctx := context.Background()

	job := &models.JobExecution{BatchID: "batch-1", Status: models.JobStarting, StartTime: base}
	require.NoError(t, repo.Create(ctx, job))
	require.NotEmpty(t, job.ID)

	end := base.Add(time.Minute)
	job.Status = models.JobCompleted
	job.EndTime = &end
	job.WriteCount = 250
	job.CommitCount = 3
	require.NoError(t, repo.Update(ctx, job, job.ID))

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobCompleted, got.Status)
	assert.Equal(t, 250, got.WriteCount)
	assert.Equal(t, 3, got.CommitCount)
	require.NotNil(t, got.EndTime)

	byBatch, err := repo.GetBy(ctx, "batch_id = ?", "batch-1")
	require.NoError(t, err)
	assert.Len(t, *byBatch, 1)

	other := &models.JobExecution{BatchID: "batch-2", Status: models.JobRunning, StartTime: base.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, other))

	all, err := repo.GetAll(ctx, "start_time desc", 10)
	require.NoError(t, err)
	require.Len(t, *all, 2)
	assert.Equal(t, "batch-2", (*all)[0].BatchID)
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	repo := posgrest.New[models.JobExecution](testutil.OpenDB(t, &models.JobExecution{}))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

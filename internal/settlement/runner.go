package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-settlement-pipeline/config"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/repository/posgrest"
	"github.com/sirupsen/logrus"
)

var ErrSkipLimitExceeded = errors.New("skip limit exceeded")

type JobRepo interface {
	Create(ctx context.Context, job *models.JobExecution) error
	Update(ctx context.Context, job *models.JobExecution, id string) error
}

type Recorder interface {
	RecordJob(job models.JobExecution)
}

type Options struct {
	ChunkSize    int
	SkipLimit    int
	OutputDir    string
	StoreTimeout time.Duration
}

func OptionsFrom(s config.Settlement) Options {
	return Options{
		ChunkSize:    s.ChunkSize,
		SkipLimit:    s.SkipLimit,
		OutputDir:    s.OutputDir,
		StoreTimeout: s.StoreTimeout,
	}
}

// Runner settles PENDING staged records into a CSV file, one chunk per
// transaction. Concurrent runs never claim the same records.
type Runner struct {
	Store     Store
	Jobs      JobRepo
	Processor ItemProcessor
	Listener  Listener
	Recorder  Recorder
	Options   Options
	Log       logrus.FieldLogger
	now       func() time.Time

	base      context.Context
	interrupt context.CancelFunc
}

func NewRunner(store *posgrest.StagedStore, jobs JobRepo, processor ItemProcessor, recorder Recorder, opts Options, log logrus.FieldLogger) *Runner {
	if opts.ChunkSize < 1 {
		opts.ChunkSize = 100
	}
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = 30 * time.Second
	}
	base, interrupt := context.WithCancel(context.Background())
	return &Runner{
		base:      base,
		interrupt: interrupt,
		Store:     gormStore{StagedStore: store},
		Jobs:      jobs,
		Processor: processor,
		Listener:  LogListener{Log: log},
		Recorder:  recorder,
		Options:   opts,
		Log:       log,
		now:       time.Now,
	}
}

// Run executes one settlement job and returns its final state. Cancelling
// ctx stops the job between chunks; a chunk already started is finished.
func (r *Runner) Run(ctx context.Context, batchID string) models.JobExecution {
	if batchID == "" {
		batchID = uuid.New().String()
	}
	bg := context.WithoutCancel(ctx)
	job := models.JobExecution{
		BatchID:   batchID,
		Status:    models.JobStarting,
		StartTime: r.now().UTC(),
	}
	if err := r.Jobs.Create(bg, &job); err != nil {
		return r.finish(bg, job, models.JobFailed, fmt.Errorf("error persisting job: %w", err))
	}
	r.Listener.BeforeJob(job)

	writer, err := CreateFile(r.Options.OutputDir, batchID, r.now())
	if err != nil {
		return r.finish(bg, job, models.JobFailed, err)
	}
	defer func() {
		if err := writer.Close(); err != nil {
			r.Log.Warnf("error closing settlement file: %v", err)
		}
	}()
	job.OutputFile = writer.Path()
	job.Status = models.JobRunning
	r.save(bg, &job)

	var excluded []string
	for {
		if ctx.Err() != nil || r.base.Err() != nil {
			return r.finish(bg, job, models.JobStopped, nil)
		}
		read, err := r.runChunk(ctx, &job, writer, &excluded)
		if err != nil {
			return r.finish(bg, job, models.JobFailed, err)
		}
		if read == 0 {
			return r.finish(bg, job, models.JobCompleted, nil)
		}
		r.Listener.AfterChunk(job)
	}
}

// Interrupt stops running jobs after their current chunk and makes later
// runs stop before their first one. Process shutdown calls it.
func (r *Runner) Interrupt() {
	r.interrupt()
}

// Interrupted is closed once Interrupt has been called.
func (r *Runner) Interrupted() <-chan struct{} {
	return r.base.Done()
}

type chunkResult struct {
	read     int
	written  int
	skipped  int
	conflict string
}

// runChunk claims, processes and writes one chunk. A record modified
// concurrently is skipped and the chunk retried without it.
func (r *Runner) runChunk(ctx context.Context, job *models.JobExecution, w *FileWriter, excluded *[]string) (int, error) {
	for {
		res, err := r.attemptChunk(ctx, job, w, *excluded)
		if err == nil {
			if err := w.Commit(); err != nil {
				return 0, err
			}
			if res.read > 0 {
				job.ReadCount += res.read
				job.WriteCount += res.written
				job.SkipCount += res.skipped
				job.CommitCount++
				r.save(context.WithoutCancel(ctx), job)
			}
			return res.read, nil
		}

		job.RollbackCount++
		if errors.Is(err, ErrSkipLimitExceeded) {
			job.ReadCount += res.read
			job.SkipCount += res.skipped
		}
		if rbErr := w.Rollback(); rbErr != nil {
			return 0, errors.Join(err, rbErr)
		}
		if res.conflict == "" || !errors.Is(err, models.ErrPersistenceConflict) {
			return 0, err
		}

		job.SkipCount++
		*excluded = append(*excluded, res.conflict)
		r.Log.WithField("batch_id", job.BatchID).Warnf("skipping record: %v", err)
		if job.SkipCount > r.Options.SkipLimit {
			return 0, fmt.Errorf("%w: %d skips, limit %d", ErrSkipLimitExceeded, job.SkipCount, r.Options.SkipLimit)
		}
	}
}

func (r *Runner) attemptChunk(ctx context.Context, job *models.JobExecution, w *FileWriter, excluded []string) (chunkResult, error) {
	var res chunkResult
	txCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.Options.StoreTimeout)
	defer cancel()

	err := r.Store.Transaction(txCtx, func(tx Store) error {
		res = chunkResult{}
		items, err := tx.ClaimPending(txCtx, r.Options.ChunkSize, excluded)
		if err != nil {
			return err
		}
		res.read = len(items)
		if len(items) == 0 {
			return nil
		}

		now := r.now()
		batchID := job.BatchID
		out := make([]models.SettlementRecord, 0, len(items))
		settled := make([]*models.StagedRecord, 0, len(items))
		for i := range items {
			rec := &items[i]
			line, err := r.Processor.Process(*rec)
			if err != nil {
				res.skipped++
				if job.SkipCount+res.skipped > r.Options.SkipLimit {
					return fmt.Errorf("%w: %d skips, limit %d: %v", ErrSkipLimitExceeded, job.SkipCount+res.skipped, r.Options.SkipLimit, err)
				}
				r.Log.WithFields(logrus.Fields{"batch_id": batchID, "transaction_id": rec.TransactionID}).Warnf("skipping record: %v", err)
				if err := tx.Transition(txCtx, rec, models.StatusFailed, &batchID, now); err != nil {
					res.conflict = rec.ID
					return err
				}
				continue
			}
			if err := tx.Transition(txCtx, rec, models.StatusInProgress, &batchID, now); err != nil {
				res.conflict = rec.ID
				return err
			}
			out = append(out, line)
			settled = append(settled, rec)
		}

		if err := w.Append(out); err != nil {
			return err
		}
		if err := w.Sync(); err != nil {
			return err
		}
		for _, rec := range settled {
			if err := tx.Transition(txCtx, rec, models.StatusProcessed, nil, now); err != nil {
				res.conflict = rec.ID
				return err
			}
		}
		res.written = len(out)
		return nil
	})
	return res, err
}

func (r *Runner) save(ctx context.Context, job *models.JobExecution) {
	if err := r.Jobs.Update(ctx, job, job.ID); err != nil {
		r.Log.WithField("job_id", job.ID).Errorf("Error saving job execution %s", err.Error())
	}
}

func (r *Runner) finish(ctx context.Context, job models.JobExecution, status models.JobStatus, cause error) models.JobExecution {
	end := r.now().UTC()
	job.Status = status
	job.EndTime = &end
	if cause != nil {
		job.ExitDescription = cause.Error()
	}
	if job.ID != "" {
		r.save(ctx, &job)
	}
	r.Listener.AfterJob(job)
	if r.Recorder != nil {
		r.Recorder.RecordJob(job)
	}
	return job
}

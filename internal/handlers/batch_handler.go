package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultJobsLimit = 20

type SettlementRunner interface {
	Run(ctx context.Context, batchID string) models.JobExecution
}

type JobRepo interface {
	GetByID(ctx context.Context, id string) (*models.JobExecution, error)
	GetAll(ctx context.Context, order string, limit int) (*[]models.JobExecution, error)
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.JobExecution, error)
}

type StagingRepo interface {
	GetByTransactionID(ctx context.Context, transactionID string) (*models.StagedRecord, error)
	CountByStatus(ctx context.Context) (map[models.ProcessingStatus]int64, error)
	CountByIssuerAndStatus(ctx context.Context, issuerBankID string, status models.ProcessingStatus) (int64, error)
	DistinctIssuers(ctx context.Context, status models.ProcessingStatus) ([]string, error)
}

var processingStatuses = []models.ProcessingStatus{
	models.StatusPending,
	models.StatusInProgress,
	models.StatusProcessed,
	models.StatusFailed,
}

type BatchHandler struct {
	Runner  SettlementRunner
	Jobs    JobRepo
	Staging StagingRepo
	Log     logrus.FieldLogger
}

func NewBatchHandler(runner SettlementRunner, jobs JobRepo, staging StagingRepo, log logrus.FieldLogger) *BatchHandler {
	return &BatchHandler{Runner: runner, Jobs: jobs, Staging: staging, Log: log}
}

// POST /api/v1/batch/settlement/run?batchId=
//
// The job runs on the request goroutine; a client that disconnects stops
// it after the current chunk.
func (h *BatchHandler) RunSettlement(c *gin.Context) {
	job := h.Runner.Run(c.Request.Context(), c.Query("batchId"))
	if job.Status == models.JobFailed && job.OutputFile == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to start job",
			"message": job.ExitDescription,
		})
		return
	}
	c.JSON(http.StatusOK, job)
}

// GET /api/v1/batch/settlement/jobs/:jobId
func (h *BatchHandler) GetJob(c *gin.Context) {
	job, err := h.Jobs.GetByID(c.Request.Context(), c.Param("jobId"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		h.Log.Errorf("Error getting job %s: %s", c.Param("jobId"), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// GET /api/v1/batch/settlement/jobs?limit=&batchId=
func (h *BatchHandler) ListJobs(c *gin.Context) {
	if batchID := c.Query("batchId"); batchID != "" {
		jobs, err := h.Jobs.GetBy(c.Request.Context(), "batch_id = ?", batchID)
		if err != nil {
			h.Log.Errorf("Error listing jobs for batch %s: %s", batchID, err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, jobs)
		return
	}

	limit := defaultJobsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	jobs, err := h.Jobs.GetAll(c.Request.Context(), "start_time desc", limit)
	if err != nil {
		h.Log.Errorf("Error listing jobs: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

type issuerSummary struct {
	BankID string                            `json:"bankId"`
	Counts map[models.ProcessingStatus]int64 `json:"counts"`
}

type stagingSummary struct {
	Counts         map[models.ProcessingStatus]int64 `json:"counts"`
	PendingIssuers []string                          `json:"pendingIssuers"`
	Issuer         *issuerSummary                    `json:"issuer,omitempty"`
}

// GET /api/v1/staging/summary?issuer=
func (h *BatchHandler) StagingSummary(c *gin.Context) {
	ctx := c.Request.Context()
	counts, err := h.Staging.CountByStatus(ctx)
	if err != nil {
		h.Log.Errorf("Error counting staged records: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	issuers, err := h.Staging.DistinctIssuers(ctx, models.StatusPending)
	if err != nil {
		h.Log.Errorf("Error listing pending issuers: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if counts == nil {
		counts = map[models.ProcessingStatus]int64{}
	}
	for _, s := range processingStatuses {
		if _, ok := counts[s]; !ok {
			counts[s] = 0
		}
	}
	if issuers == nil {
		issuers = []string{}
	}
	summary := stagingSummary{Counts: counts, PendingIssuers: issuers}

	if bankID := c.Query("issuer"); bankID != "" {
		issuer := &issuerSummary{BankID: bankID, Counts: make(map[models.ProcessingStatus]int64, len(processingStatuses))}
		for _, s := range processingStatuses {
			n, err := h.Staging.CountByIssuerAndStatus(ctx, bankID, s)
			if err != nil {
				h.Log.Errorf("Error counting %s records for issuer %s: %s", s, bankID, err.Error())
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			issuer.Counts[s] = n
		}
		summary.Issuer = issuer
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/v1/staging/transactions/:transactionId
func (h *BatchHandler) GetStagedTransaction(c *gin.Context) {
	rec, err := h.Staging.GetByTransactionID(c.Request.Context(), c.Param("transactionId"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not staged"})
		return
	}
	if err != nil {
		h.Log.Errorf("Error getting staged transaction %s: %s", c.Param("transactionId"), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

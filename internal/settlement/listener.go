package settlement

import (
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/sirupsen/logrus"
)

type Listener interface {
	BeforeJob(job models.JobExecution)
	AfterChunk(job models.JobExecution)
	AfterJob(job models.JobExecution)
}

type LogListener struct {
	Log logrus.FieldLogger
}

func (l LogListener) BeforeJob(job models.JobExecution) {
	l.Log.WithFields(logrus.Fields{"job_id": job.ID, "batch_id": job.BatchID}).Info("settlement job starting")
}

func (l LogListener) AfterChunk(job models.JobExecution) {
	l.Log.WithFields(fields(job)).Debug("settlement chunk committed")
}

func (l LogListener) AfterJob(job models.JobExecution) {
	entry := l.Log.WithFields(fields(job)).WithField("status", job.Status)
	if job.ExitDescription != "" {
		entry = entry.WithField("exit", job.ExitDescription)
	}
	if job.Status == models.JobFailed {
		entry.Error("settlement job finished")
	} else {
		entry.Info("settlement job finished")
	}
	if job.SkipCount > 0 {
		entry.Warnf("settlement job skipped %d records", job.SkipCount)
	}
}

func fields(job models.JobExecution) logrus.Fields {
	return logrus.Fields{
		"job_id":    job.ID,
		"batch_id":  job.BatchID,
		"read":      job.ReadCount,
		"written":   job.WriteCount,
		"skipped":   job.SkipCount,
		"commits":   job.CommitCount,
		"rollbacks": job.RollbackCount,
	}
}

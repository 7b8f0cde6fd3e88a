package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStarting  JobStatus = "STARTING"
	JobRunning   JobStatus = "RUNNING"
	JobCompleted JobStatus = "COMPLETED"
	JobFailed    JobStatus = "FAILED"
	JobStopped   JobStatus = "STOPPED"
)

// JobExecution is the persisted outcome of one settlement run.
type JobExecution struct {
	ID              string     `gorm:"primaryKey;size:36" json:"jobId"`
	BatchID         string     `gorm:"size:64;not null;index" json:"batchId"`
	Status          JobStatus  `gorm:"size:20;not null" json:"status"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	ReadCount       int        `json:"readCount"`
	WriteCount      int        `json:"writeCount"`
	SkipCount       int        `json:"skipCount"`
	CommitCount     int        `json:"commitCount"`
	RollbackCount   int        `json:"rollbackCount"`
	OutputFile      string     `json:"outputFile,omitempty"`
	ExitDescription string     `gorm:"size:1024" json:"exitDescription,omitempty"`
}

func (JobExecution) TableName() string {
	return "settlement_jobs"
}

func (j *JobExecution) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	return
}

func (s JobStatus) Finished() bool {
	return s == JobCompleted || s == JobFailed || s == JobStopped
}

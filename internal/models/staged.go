package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "PENDING"
	StatusInProgress ProcessingStatus = "IN_PROGRESS"
	StatusProcessed  ProcessingStatus = "PROCESSED"
	StatusFailed     ProcessingStatus = "FAILED"
)

var transitions = map[ProcessingStatus][]ProcessingStatus{
	StatusPending:    {StatusInProgress, StatusFailed},
	StatusInProgress: {StatusProcessed},
}

func (s ProcessingStatus) CanTransitionTo(next ProcessingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StagedRecord is a persisted authorized transaction awaiting settlement.
type StagedRecord struct {
	ID                   string           `gorm:"primaryKey;size:36" json:"id"`
	TransactionID        string           `gorm:"size:64;not null;uniqueIndex" json:"transactionId"`
	PayerID              string           `gorm:"size:64;not null" json:"payerId"`
	PayeeID              string           `gorm:"size:64;not null" json:"payeeId"`
	Amount               decimal.Decimal  `gorm:"type:numeric(19,4);not null" json:"amount"`
	Currency             string           `gorm:"size:3;not null" json:"currency"`
	IssuerBankID         string           `gorm:"size:32;not null;index:idx_staged_issuer" json:"issuerBankId"`
	AcquirerBankID       string           `gorm:"size:32;not null" json:"acquirerBankId"`
	MerchantCategoryCode string           `gorm:"size:4" json:"merchantCategoryCode"`
	OriginCountry        string           `gorm:"size:2" json:"originCountry"`
	FraudRiskScore       int              `json:"fraudRiskScore"`
	AuthorizedAt         time.Time        `gorm:"not null" json:"authorizedAt"`
	CreatedAt            time.Time        `gorm:"not null;index:idx_staged_created" json:"createdAt"`
	ProcessingStatus     ProcessingStatus `gorm:"size:20;not null;index:idx_staged_status" json:"processingStatus"`
	BatchID              *string          `gorm:"size:64" json:"batchId,omitempty"`
	ProcessedAt          *time.Time       `json:"processedAt,omitempty"`
	Version              int64            `gorm:"not null;default:0" json:"version"`
}

func (StagedRecord) TableName() string {
	return "staged_transactions"
}

func (r *StagedRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

// NewStagedRecord builds the PENDING record for an authorized event.
func NewStagedRecord(event AuthorizedEvent, now time.Time) StagedRecord {
	return StagedRecord{
		ID:                   uuid.New().String(),
		TransactionID:        event.TransactionID,
		PayerID:              event.PayerID,
		PayeeID:              event.PayeeID,
		Amount:               event.Amount,
		Currency:             event.Currency,
		IssuerBankID:         event.IssuerBankID,
		AcquirerBankID:       event.AcquirerBankID,
		MerchantCategoryCode: event.MerchantCategoryCode,
		OriginCountry:        event.OriginCountry,
		FraudRiskScore:       event.FraudRiskScore,
		AuthorizedAt:         event.AuthorizedAt.UTC(),
		CreatedAt:            now.UTC().Truncate(time.Microsecond),
		ProcessingStatus:     StatusPending,
	}
}

// TransitionTo moves the record along the processing state machine and bumps its version.
func (r *StagedRecord) TransitionTo(next ProcessingStatus, now time.Time) error {
	if !r.ProcessingStatus.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.ProcessingStatus, next)
	}
	r.ProcessingStatus = next
	if next == StatusProcessed || next == StatusFailed {
		at := now.UTC()
		r.ProcessedAt = &at
	}
	r.Version++
	return nil
}

package settlement

import (
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
)

// ProcessingError reports a staged record that cannot be settled. The record
// is skipped and marked FAILED.
type ProcessingError struct {
	TransactionID string
	Err           error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("cannot settle transaction %s: %v", e.TransactionID, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

type ItemProcessor interface {
	Process(rec models.StagedRecord) (models.SettlementRecord, error)
}

// SettlementProcessor validates a staged record and maps it to its
// settlement line, dated today in UTC.
type SettlementProcessor struct {
	now func() time.Time
}

func NewSettlementProcessor(now func() time.Time) *SettlementProcessor {
	if now == nil {
		now = time.Now
	}
	return &SettlementProcessor{now: now}
}

func (p *SettlementProcessor) Process(rec models.StagedRecord) (models.SettlementRecord, error) {
	if err := validate(rec); err != nil {
		return models.SettlementRecord{}, &ProcessingError{TransactionID: rec.TransactionID, Err: err}
	}
	return models.SettlementRecord{
		TransactionID:  rec.TransactionID,
		IssuerBankID:   rec.IssuerBankID,
		AcquirerBankID: rec.AcquirerBankID,
		Amount:         rec.Amount,
		Currency:       rec.Currency,
		SettlementDate: p.now().UTC().Truncate(24 * time.Hour),
		Status:         models.SettlementStatusSettled,
	}, nil
}

func validate(rec models.StagedRecord) error {
	switch {
	case rec.TransactionID == "":
		return errors.New("missing transaction id")
	case !rec.Amount.IsPositive():
		return fmt.Errorf("non-positive amount %s", rec.Amount.String())
	case len(rec.Currency) != 3:
		return fmt.Errorf("invalid currency %q", rec.Currency)
	case rec.IssuerBankID == "":
		return errors.New("missing issuer bank")
	case rec.AcquirerBankID == "":
		return errors.New("missing acquirer bank")
	}
	return nil
}

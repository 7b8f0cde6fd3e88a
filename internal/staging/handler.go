package staging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/subscriber"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	OutcomeStaged    = "staged"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid"
)

type StagingRepo interface {
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)
	Create(ctx context.Context, rec *models.StagedRecord) error
}

type Recorder interface {
	RecordStaged(outcome string)
}

// Handler stages authorized events. It is idempotent on transaction id: the
// first event seen for an id wins and later copies are acknowledged unchanged.
type Handler struct {
	Repo     StagingRepo
	Recorder Recorder
	Log      logrus.FieldLogger
	now      func() time.Time
}

func NewHandler(repo StagingRepo, recorder Recorder, log logrus.FieldLogger) *Handler {
	return &Handler{Repo: repo, Recorder: recorder, Log: log, now: time.Now}
}

// Handle returns nil when the offset may be committed. Undecodable events
// wrap subscriber.ErrUnprocessable.
func (h *Handler) Handle(ctx context.Context, msg kafka.Message) error {
	var event models.AuthorizedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.Log.Errorf("Error parsing authorized event %s", err.Error())
		h.Recorder.RecordStaged(OutcomeInvalid)
		return fmt.Errorf("%w: %v", subscriber.ErrUnprocessable, err)
	}
	if event.TransactionID == "" {
		h.Recorder.RecordStaged(OutcomeInvalid)
		return fmt.Errorf("%w: authorized event without transaction id at offset %d", subscriber.ErrUnprocessable, msg.Offset)
	}

	log := h.Log.WithFields(logrus.Fields{
		"transaction_id": event.TransactionID,
		"partition":      msg.Partition,
		"offset":         msg.Offset,
	})

	exists, err := h.Repo.ExistsByTransactionID(ctx, event.TransactionID)
	if err != nil {
		return err
	}
	if exists {
		log.Warn("transaction already staged, skipping")
		h.Recorder.RecordStaged(OutcomeDuplicate)
		return nil
	}

	rec := models.NewStagedRecord(event, h.now())
	if err := h.Repo.Create(ctx, &rec); err != nil {
		if errors.Is(err, models.ErrDuplicateTransaction) {
			log.Warn("transaction staged concurrently, skipping")
			h.Recorder.RecordStaged(OutcomeDuplicate)
			return nil
		}
		return err
	}

	log.WithField("issuer_bank_id", rec.IssuerBankID).Debug("transaction staged")
	h.Recorder.RecordStaged(OutcomeStaged)
	return nil
}

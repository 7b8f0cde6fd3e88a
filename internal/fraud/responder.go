package fraud

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

type Evaluator interface {
	Evaluate(req models.FraudCheckRequest) models.FraudCheckResponse
}

// Responder answers fraud check requests published on the fraud subject.
// Instances share a queue group so each request is handled once.
type Responder struct {
	Conn    *nats.Conn
	Subject string
	Queue   string
	Engine  Evaluator
	Log     logrus.FieldLogger

	mu       sync.Mutex
	sub      *nats.Subscription
	inflight sync.WaitGroup
}

func NewResponder(conn *nats.Conn, subject, queue string, engine Evaluator, log logrus.FieldLogger) *Responder {
	return &Responder{
		Conn:    conn,
		Subject: subject,
		Queue:   queue,
		Engine:  engine,
		Log:     log,
	}
}

func (r *Responder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sub != nil {
		return nil
	}
	sub, err := r.Conn.QueueSubscribe(r.Subject, r.Queue, r.handle)
	if err != nil {
		return fmt.Errorf("error subscribing to %s: %w", r.Subject, err)
	}
	if err := r.Conn.FlushWithContext(ctx); err != nil {
		_ = sub.Unsubscribe()
		return fmt.Errorf("error flushing subscription to %s: %w", r.Subject, err)
	}
	r.sub = sub
	r.Log.WithFields(logrus.Fields{"subject": r.Subject, "queue": r.Queue}).Info("fraud responder listening")
	return nil
}

// Stop drains the subscription so queued requests are still answered, then
// waits for in-flight handlers. It gives up when ctx is done.
func (r *Responder) Stop(ctx context.Context) error {
	r.mu.Lock()
	sub := r.sub
	r.sub = nil
	r.mu.Unlock()

	if sub == nil {
		return nil
	}
	if err := sub.Drain(); err != nil {
		return fmt.Errorf("error draining %s: %w", r.Subject, err)
	}

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for sub.IsValid() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("fraud responder drain: %w", ctx.Err())
		case <-ticker.C:
		}
	}

	done := make(chan struct{})
	go func() {
		r.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		r.Log.Info("fraud responder stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("fraud responder in-flight wait: %w", ctx.Err())
	}
}

func (r *Responder) handle(msg *nats.Msg) {
	r.inflight.Add(1)
	defer r.inflight.Done()

	resp := r.evaluate(msg.Data)

	if msg.Reply == "" {
		r.Log.WithField("transaction_id", resp.TransactionID).Warn("fraud check request without reply subject, dropping response")
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		r.Log.Errorf("Error encoding fraud response %s", err.Error())
		data, _ = json.Marshal(models.NewErrorFraudResponse(resp.TransactionID, "Error processing request: "+err.Error()))
	}
	if err := msg.Respond(data); err != nil {
		r.Log.WithField("transaction_id", resp.TransactionID).Errorf("Error sending fraud response %s", err.Error())
	}
}

func (r *Responder) evaluate(data []byte) (resp models.FraudCheckResponse) {
	txID := models.UnknownTransactionID
	defer func() {
		if p := recover(); p != nil {
			r.Log.WithField("transaction_id", txID).Errorf("panic evaluating fraud request: %v", p)
			resp = models.NewErrorFraudResponse(txID, fmt.Sprintf("Error processing request: %v", p))
		}
	}()

	var req models.FraudCheckRequest
	if err := json.Unmarshal(data, &req); err != nil {
		r.Log.Errorf("Error parsing fraud check request %s", err.Error())
		return models.NewErrorFraudResponse(txID, "Error processing request: "+err.Error())
	}
	if req.TransactionID != "" {
		txID = req.TransactionID
	}

	resp = r.Engine.Evaluate(req)
	r.Log.WithFields(logrus.Fields{
		"transaction_id": resp.TransactionID,
		"approved":       resp.Approved,
		"risk_score":     resp.RiskScore,
	}).Debug("fraud check evaluated")
	return resp
}

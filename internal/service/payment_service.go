package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/sirupsen/logrus"
)

// FraudChecker runs a fraud check behind the circuit breaker. Implementations
// answer with the fallback verdict instead of failing when the check is unavailable.
type FraudChecker interface {
	Execute(ctx context.Context, req models.FraudCheckRequest) (models.FraudCheckResponse, error)
}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

type Recorder interface {
	RecordPayment(resp models.PaymentResponse)
	ObserveFraudLatency(d time.Duration)
	RecordFallback(level models.RiskLevel)
}

type PaymentService struct {
	Checker        FraudChecker
	Publisher      Publisher
	Recorder       Recorder
	Topic          string
	PublishTimeout time.Duration
	Log            logrus.FieldLogger
	newID          func() string
	now            func() time.Time
}

func NewPaymentService(checker FraudChecker, publisher Publisher, recorder Recorder, topic string, publishTimeout time.Duration, log logrus.FieldLogger) *PaymentService {
	if publishTimeout <= 0 {
		publishTimeout = 5 * time.Second
	}
	return &PaymentService{
		Checker:        checker,
		Publisher:      publisher,
		Recorder:       recorder,
		Topic:          topic,
		PublishTimeout: publishTimeout,
		Log:            log,
		newID:          func() string { return uuid.New().String() },
		now:            time.Now,
	}
}

// Authorize checks the payment for fraud and, when approved, publishes it to
// the authorized log. Failures never escape: they come back as an ERROR response.
func (s *PaymentService) Authorize(ctx context.Context, req models.PaymentRequest) (resp models.PaymentResponse) {
	txID := s.newID()
	log := s.Log.WithField("transaction_id", txID)

	defer func() {
		if p := recover(); p != nil {
			log.Errorf("panic authorizing payment: %v", p)
			resp = models.FailedPayment(txID, fmt.Sprint(p))
		}
		s.Recorder.RecordPayment(resp)
	}()

	fraudReq := models.FraudCheckRequest{
		TransactionID: txID,
		PayerID:       req.PayerID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		OriginCountry: req.OriginCountry,
		Timestamp:     s.now().UTC(),
	}

	start := s.now()
	verdict, err := s.Checker.Execute(ctx, fraudReq)
	s.Recorder.ObserveFraudLatency(s.now().Sub(start))
	if err != nil {
		log.Errorf("Error checking fraud %s", err.Error())
		return models.FailedPayment(txID, err.Error())
	}

	if !verdict.Approved {
		log.WithFields(logrus.Fields{
			"risk_score": verdict.RiskScore,
			"risk_level": verdict.RiskLevel,
		}).Infof("payment rejected: %s", verdict.Reason)
		return models.RejectedPayment(txID, verdict.Reason, req.Amount, req.Currency)
	}

	event := models.AuthorizedEvent{
		TransactionID:        txID,
		PayerID:              req.PayerID,
		PayeeID:              req.PayeeID,
		Amount:               req.Amount,
		Currency:             req.Currency,
		IssuerBankID:         req.IssuerBankID,
		AcquirerBankID:       req.AcquirerBankID,
		MerchantCategoryCode: req.MerchantCategoryCode,
		OriginCountry:        req.OriginCountry,
		FraudRiskScore:       verdict.RiskScore,
		AuthorizedAt:         s.now().UTC(),
	}

	pubCtx, cancel := context.WithTimeout(ctx, s.PublishTimeout)
	defer cancel()
	if err := s.Publisher.Publish(pubCtx, s.Topic, txID, event); err != nil {
		log.Errorf("Error publishing authorized event %s", err.Error())
		return models.FailedPayment(txID, err.Error())
	}

	log.WithField("risk_level", verdict.RiskLevel).Info("payment authorized")
	return models.AuthorizedPayment(txID, req.Amount, req.Currency)
}

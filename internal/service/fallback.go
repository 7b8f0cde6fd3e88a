package service

import (
	"context"
	"errors"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/breaker"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// NewFraudFallback answers fraud checks locally when the responder cannot:
// amounts up to maxAmount are approved, anything above is rejected.
func NewFraudFallback(maxAmount decimal.Decimal, recorder Recorder, log logrus.FieldLogger) breaker.Fallback[models.FraudCheckRequest, models.FraudCheckResponse] {
	return func(ctx context.Context, req models.FraudCheckRequest, cause error) (models.FraudCheckResponse, error) {
		resp := models.FraudCheckResponse{TransactionID: req.TransactionID}
		if req.Amount.LessThanOrEqual(maxAmount) {
			resp.Approved = true
			resp.RiskScore = 50
			resp.RiskLevel = models.RiskFallbackLow
			resp.Reason = "Fallback approved (low amount)"
		} else {
			resp.Approved = false
			resp.RiskScore = 100
			resp.RiskLevel = models.RiskFallbackHigh
			resp.Reason = "Fallback rejected (amount exceeds safety threshold: " + maxAmount.StringFixed(2) + ")"
		}

		entry := log.WithFields(logrus.Fields{
			"transaction_id": req.TransactionID,
			"risk_level":     resp.RiskLevel,
		})
		if errors.Is(cause, models.ErrCircuitOpen) {
			entry.Warn("fraud check short-circuited, using fallback")
		} else {
			entry.Warnf("fraud check failed, using fallback: %v", cause)
		}
		recorder.RecordFallback(resp.RiskLevel)
		return resp, nil
	}
}

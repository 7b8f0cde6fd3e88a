package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RiskLevel string

const (
	RiskLow          RiskLevel = "LOW"
	RiskHigh         RiskLevel = "HIGH"
	RiskCritical     RiskLevel = "CRITICAL"
	RiskError        RiskLevel = "ERROR"
	RiskFallbackLow  RiskLevel = "FALLBACK_LOW"
	RiskFallbackHigh RiskLevel = "FALLBACK_HIGH"
)

// UnknownTransactionID is echoed in error replies when the request could not be decoded.
const UnknownTransactionID = "UNKNOWN"

type FraudCheckRequest struct {
	TransactionID string          `json:"transactionId"`
	PayerID       string          `json:"payerId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	OriginCountry string          `json:"originCountry"`
	Timestamp     time.Time       `json:"timestamp"`
}

type FraudCheckResponse struct {
	TransactionID    string    `json:"transactionId"`
	Approved         bool      `json:"approved"`
	RiskScore        int       `json:"riskScore"`
	RiskLevel        RiskLevel `json:"riskLevel"`
	Reason           string    `json:"reason"`
	ProcessingTimeMs float64   `json:"processingTimeMs"`
	Timestamp        time.Time `json:"timestamp"`
}

func NewErrorFraudResponse(transactionID, reason string) FraudCheckResponse {
	return FraudCheckResponse{
		TransactionID: transactionID,
		Approved:      false,
		RiskScore:     100,
		RiskLevel:     RiskError,
		Reason:        reason,
		Timestamp:     time.Now().UTC(),
	}
}

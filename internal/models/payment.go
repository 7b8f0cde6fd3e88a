package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentAuthorized PaymentStatus = "AUTHORIZED"
	PaymentRejected   PaymentStatus = "REJECTED"
	PaymentError      PaymentStatus = "ERROR"
)

type PaymentRequest struct {
	PayerID              string          `json:"payerId" binding:"required"`
	PayeeID              string          `json:"payeeId" binding:"required"`
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency" binding:"required,len=3"`
	IssuerBankID         string          `json:"issuerBankId" binding:"required"`
	AcquirerBankID       string          `json:"acquirerBankId" binding:"required"`
	MerchantCategoryCode string          `json:"merchantCategoryCode"`
	OriginCountry        string          `json:"originCountry"`
}

type PaymentResponse struct {
	TransactionID string          `json:"transactionId"`
	Status        PaymentStatus   `json:"status"`
	Message       string          `json:"message"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	ProcessedAt   time.Time       `json:"processedAt"`
}

func AuthorizedPayment(txID string, amount decimal.Decimal, currency string) PaymentResponse {
	return PaymentResponse{
		TransactionID: txID,
		Status:        PaymentAuthorized,
		Message:       "Payment authorized",
		Amount:        amount,
		Currency:      currency,
		ProcessedAt:   time.Now().UTC(),
	}
}

func RejectedPayment(txID, reason string, amount decimal.Decimal, currency string) PaymentResponse {
	return PaymentResponse{
		TransactionID: txID,
		Status:        PaymentRejected,
		Message:       reason,
		Amount:        amount,
		Currency:      currency,
		ProcessedAt:   time.Now().UTC(),
	}
}

func FailedPayment(txID, message string) PaymentResponse {
	return PaymentResponse{
		TransactionID: txID,
		Status:        PaymentError,
		Message:       "Processing failed: " + message,
		ProcessedAt:   time.Now().UTC(),
	}
}

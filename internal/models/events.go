package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentsAuthorizedTopic = "payments.authorized"
	PaymentsRejectedTopic   = "payments.rejected"
	PaymentsDLQTopic        = "payments.authorized.dlq"
)

// AuthorizedEvent is the durable-log record for an approved payment, keyed by TransactionID.
type AuthorizedEvent struct {
	TransactionID        string          `json:"transactionId"`
	PayerID              string          `json:"payerId"`
	PayeeID              string          `json:"payeeId"`
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency"`
	IssuerBankID         string          `json:"issuerBankId"`
	AcquirerBankID       string          `json:"acquirerBankId"`
	MerchantCategoryCode string          `json:"merchantCategoryCode"`
	OriginCountry        string          `json:"originCountry"`
	FraudRiskScore       int             `json:"fraudRiskScore"`
	AuthorizedAt         time.Time       `json:"authorizedAt"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Partition     int       `json:"partition"`
	Offset        int64     `json:"offset"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Error         string    `json:"error"`
	Timestamp     time.Time `json:"timestamp"`
}

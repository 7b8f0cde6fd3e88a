package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const SettlementStatusSettled = "SETTLED"

var SettlementCSVHeader = []string{
	"TransactionId", "IssuerBankId", "AcquirerBankId", "Amount", "Currency", "SettlementDate", "Status",
}

type SettlementRecord struct {
	TransactionID  string
	IssuerBankID   string
	AcquirerBankID string
	Amount         decimal.Decimal
	Currency       string
	SettlementDate time.Time
	Status         string
}

func (s SettlementRecord) CSVRow() []string {
	return []string{
		s.TransactionID,
		s.IssuerBankID,
		s.AcquirerBankID,
		FormatAmount(s.Amount, s.Currency),
		s.Currency,
		s.SettlementDate.Format(time.DateOnly),
		s.Status,
	}
}

// Minor units for ISO 4217 currencies that do not use two decimals.
var currencyScale = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0, "KRW": 0,
	"PYG": 0, "RWF": 0, "UGX": 0, "UYI": 0, "VND": 0, "VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
	"CLF": 4, "UYW": 4,
}

// FormatAmount renders amount with the currency's minor-unit scale. An amount
// carrying more precision than that is written exactly, never rounded.
func FormatAmount(amount decimal.Decimal, currency string) string {
	scale, ok := currencyScale[currency]
	if !ok {
		scale = 2
	}
	if !amount.Round(scale).Equal(amount) {
		return amount.String()
	}
	return amount.StringFixed(scale)
}

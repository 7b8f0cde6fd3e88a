package fraud

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/shopspring/decimal"
)

const (
	amountRuleScore  = 50
	countryRuleScore = 30
	criticalScore    = 100
)

// RuleEngine scores fraud check requests. It holds no mutable state and is
// safe for concurrent use.
type RuleEngine struct {
	threshold     decimal.Decimal
	highRiskLands map[string]struct{}
	now           func() time.Time
}

func NewRuleEngine(threshold decimal.Decimal, highRiskCountries []string) *RuleEngine {
	lands := make(map[string]struct{}, len(highRiskCountries))
	for _, c := range highRiskCountries {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			lands[c] = struct{}{}
		}
	}
	return &RuleEngine{
		threshold:     threshold,
		highRiskLands: lands,
		now:           time.Now,
	}
}

// Evaluate applies every rule in order. Scores add up, the last matching
// rule's reason wins and an invalid amount forces a CRITICAL outcome.
func (e *RuleEngine) Evaluate(req models.FraudCheckRequest) models.FraudCheckResponse {
	start := e.now()

	resp := models.FraudCheckResponse{
		TransactionID: req.TransactionID,
		Approved:      true,
		RiskScore:     0,
		RiskLevel:     models.RiskLow,
		Reason:        "Transaction approved",
	}

	if req.Amount.GreaterThan(e.threshold) {
		resp.Approved = false
		resp.RiskScore += amountRuleScore
		resp.RiskLevel = models.RiskHigh
		resp.Reason = fmt.Sprintf("Amount %s exceeds threshold %s", req.Amount.StringFixed(2), e.threshold.StringFixed(2))
	}

	if e.isHighRisk(req.OriginCountry) {
		resp.Approved = false
		resp.RiskScore += countryRuleScore
		resp.RiskLevel = models.RiskHigh
		resp.Reason = "Transaction from high-risk country: " + req.OriginCountry
	}

	if !req.Amount.IsPositive() {
		resp.Approved = false
		resp.RiskScore = criticalScore
		resp.RiskLevel = models.RiskCritical
		resp.Reason = "Invalid transaction amount: " + req.Amount.StringFixed(2)
	}

	end := e.now()
	resp.ProcessingTimeMs = float64(end.Sub(start).Nanoseconds()) / 1e6
	resp.Timestamp = end.UTC()
	return resp
}

func (e *RuleEngine) isHighRisk(country string) bool {
	if country == "" {
		return false
	}
	_, ok := e.highRiskLands[strings.ToUpper(country)]
	return ok
}

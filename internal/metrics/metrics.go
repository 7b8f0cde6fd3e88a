package metrics

import (
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"
)

// Metrics holds the pipeline collectors. Collectors are safe for concurrent use.
type Metrics struct {
	PaymentsTotal     *prometheus.CounterVec
	PaymentAmounts    *prometheus.HistogramVec
	FraudLatency      prometheus.Histogram
	FraudLastLatency  prometheus.Gauge
	FallbacksTotal    *prometheus.CounterVec
	BreakerState      *prometheus.GaugeVec
	StagedTotal       *prometheus.CounterVec
	SettlementJobs    *prometheus.CounterVec
	SettlementRecords *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		PaymentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_total",
				Help: "Total payments processed by authorization outcome",
			},
			[]string{"status"},
		),
		PaymentAmounts: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_amounts",
				Help:    "Distribution of authorized payment amounts",
				Buckets: prometheus.LinearBuckets(0, 250, 20),
			},
			[]string{"currency"},
		),
		FraudLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fraud_check_latency_seconds",
				Help:    "Round-trip latency of fraud checks, including fallbacks",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
		FraudLastLatency: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "fraud_check_last_latency_ms",
				Help: "Latency of the most recent fraud check in milliseconds",
			},
		),
		FallbacksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraud_fallbacks_total",
				Help: "Fraud checks answered by the fallback policy",
			},
			[]string{"risk_level"},
		),
		BreakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open",
			},
			[]string{"name"},
		),
		StagedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "staging_records_total",
				Help: "Authorized events consumed by staging outcome",
			},
			[]string{"outcome"},
		),
		SettlementJobs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_jobs_total",
				Help: "Settlement batch runs by final status",
			},
			[]string{"status"},
		),
		SettlementRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_records_total",
				Help: "Staged records handled by settlement runs",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.PaymentsTotal,
		m.PaymentAmounts,
		m.FraudLatency,
		m.FraudLastLatency,
		m.FallbacksTotal,
		m.BreakerState,
		m.StagedTotal,
		m.SettlementJobs,
		m.SettlementRecords,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) RecordPayment(resp models.PaymentResponse) {
	m.PaymentsTotal.WithLabelValues(string(resp.Status)).Inc()
	if resp.Status == models.PaymentAuthorized {
		amount, _ := resp.Amount.Float64()
		m.PaymentAmounts.WithLabelValues(resp.Currency).Observe(amount)
	}
}

func (m *Metrics) ObserveFraudLatency(d time.Duration) {
	m.FraudLatency.Observe(d.Seconds())
	m.FraudLastLatency.Set(float64(d.Microseconds()) / 1000)
}

func (m *Metrics) RecordFallback(level models.RiskLevel) {
	m.FallbacksTotal.WithLabelValues(string(level)).Inc()
}

func (m *Metrics) SetBreakerState(name string, _ gobreaker.State, to gobreaker.State) {
	m.BreakerState.WithLabelValues(name).Set(float64(to))
}

func (m *Metrics) RecordStaged(outcome string) {
	m.StagedTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordJob(job models.JobExecution) {
	m.SettlementJobs.WithLabelValues(string(job.Status)).Inc()
	m.SettlementRecords.WithLabelValues("written").Add(float64(job.WriteCount))
	m.SettlementRecords.WithLabelValues("skipped").Add(float64(job.SkipCount))
}

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-settlement-pipeline/config"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/breaker"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/broadcast"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/fraud"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/fraudclient"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/handlers"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/metrics"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/publisher"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/service"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/settlement"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/staging"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/subscriber"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"gorm.io/gorm"
)

const fraudBreakerName = "fraudCheck"

type App struct {
	config     *config.Config
	Router     *gin.Engine
	Server     *HTTPServer
	Log        *logrus.Logger
	Logs       *broadcast.RecentLogs
	Registry   *prometheus.Registry
	Metrics    *metrics.Metrics
	Supervisor *Supervisor

	runner *settlement.Runner
}

func newApp(cfg *config.Config, name string) (*App, error) {
	log := cfg.APP.NewLogger()
	recent := broadcast.NewRecentLogs(cfg.APP.RecentLogs)
	log.AddHook(broadcast.NewHook(recent, logrus.InfoLevel))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New()
	if err := m.Register(registry); err != nil {
		return nil, fmt.Errorf("error registering metrics: %w", err)
	}

	router := NewRouter()
	RegisterOpsRoutes(router, handlers.NewOpsHandler(name, recent), registry)

	return &App{
		config:     cfg,
		Router:     router,
		Server:     NewHTTPServer(cfg.APP.PORT, router),
		Log:        log,
		Logs:       recent,
		Registry:   registry,
		Metrics:    m,
		Supervisor: NewSupervisor(cfg.APP.ShutdownTimeout, log.WithField("service", name)),
	}, nil
}

// NewPaymentGateway wires the synchronous authorization path: HTTP in, fraud
// check over NATS behind a circuit breaker, authorized events out to Kafka.
func NewPaymentGateway(cfg *config.Config) (*App, error) {
	a, err := newApp(cfg, "payment-gateway")
	if err != nil {
		return nil, err
	}

	conn, err := ConnectNATS(cfg.NATS, cfg.NATS.ClientName+"-gateway", a.Log)
	if err != nil {
		return nil, err
	}
	a.Supervisor.Add(natsComponent(conn))

	client := fraudclient.New(conn, cfg.NATS.FraudSubject, cfg.NATS.RequestTimeout)
	fallback := service.NewFraudFallback(cfg.Resilience.FallbackMaxAmount, a.Metrics, a.Log)
	checker := breaker.New(
		breaker.SettingsFrom(fraudBreakerName, cfg.Resilience),
		client.Check,
		fallback,
		a.Log,
		breaker.OnStateChange[models.FraudCheckRequest, models.FraudCheckResponse](a.Metrics.SetBreakerState),
	)
	a.Metrics.SetBreakerState(fraudBreakerName, gobreaker.StateClosed, checker.State())

	pub := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, []string{cfg.Kafka.AuthorizedTopic}, cfg.Kafka.GetRetryConfig(), a.Log)
	a.Supervisor.Add(closerComponent("kafka-publisher", pub.Close))

	svc := service.NewPaymentService(checker, pub, a.Metrics, cfg.Kafka.AuthorizedTopic, cfg.Kafka.PublishTimeout, a.Log)
	RegisterPaymentRoutes(a.Router, handlers.NewPaymentHandler(svc, a.Log))
	return a, nil
}

// NewFraudService wires the NATS fraud responder.
func NewFraudService(cfg *config.Config) (*App, error) {
	a, err := newApp(cfg, "fraud-service")
	if err != nil {
		return nil, err
	}

	conn, err := ConnectNATS(cfg.NATS, cfg.NATS.ClientName+"-fraud", a.Log)
	if err != nil {
		return nil, err
	}
	engine := fraud.NewRuleEngine(cfg.Fraud.AmountThreshold, cfg.Fraud.HighRiskCountries)
	responder := fraud.NewResponder(conn, cfg.NATS.FraudSubject, cfg.NATS.FraudQueue, engine, a.Log)
	a.Supervisor.Add(
		natsComponent(conn),
		Component{Name: "fraud-responder", Start: responder.Start, Stop: responder.Stop},
	)
	return a, nil
}

// NewSettlementBatch wires staging from Kafka into Postgres and the
// settlement job endpoints.
func NewSettlementBatch(cfg *config.Config) (*App, error) {
	a, err := newApp(cfg, "settlement-batch")
	if err != nil {
		return nil, err
	}

	db, err := cfg.DB.GormConnect()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := a.attachDatabase(db); err != nil {
		return nil, err
	}
	return a, nil
}

// attachDatabase wires settlement onto db and leaves closing it to the
// supervisor. db is closed here if wiring fails.
func (a *App) attachDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	a.Supervisor.Add(closerComponent("database", sqlDB.Close))

	if err := a.initSettlement(db); err != nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			a.Log.Warnf("error closing database: %v", closeErr)
		}
		return err
	}
	return nil
}

func (a *App) initSettlement(db *gorm.DB) error {
	cfg := a.config
	if err := db.AutoMigrate(&models.StagedRecord{}, &models.JobExecution{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	store := posgrest.NewStagedStore(db)
	jobs := posgrest.New[models.JobExecution](db)
	retry := cfg.Kafka.GetRetryConfig()

	dlq := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, []string{cfg.Kafka.DLQTopic}, retry, a.Log)
	a.Supervisor.Add(closerComponent("kafka-dlq-publisher", dlq.Close))

	stager := staging.NewHandler(store, a.Metrics, a.Log)
	consumer := subscriber.NewGroupConsumer(
		cfg.Kafka.Brokers,
		cfg.Kafka.AuthorizedTopic,
		cfg.Kafka.StagingConsumerGroup,
		cfg.Kafka.StagingWorkers,
		stager.Handle,
		dlq,
		cfg.Kafka.DLQTopic,
		retry,
		cfg.Kafka.CommitTimeout,
		a.Log,
	)
	a.Supervisor.Add(Component{Name: "staging-consumer", Start: consumer.Start, Stop: consumer.Stop})

	runner := settlement.NewRunner(
		store,
		jobs,
		settlement.NewSettlementProcessor(time.Now),
		a.Metrics,
		settlement.OptionsFrom(cfg.Settlement),
		a.Log,
	)
	// Running jobs stop after their current chunk once shutdown begins,
	// before the database below the server is closed.
	a.Server.OnShutdown(runner.Interrupt)
	a.runner = runner
	RegisterBatchRoutes(a.Router, handlers.NewBatchHandler(runner, jobs, store, a.Log))
	return nil
}

// Run serves until ctx is cancelled. The HTTP server starts last and so is
// the first to stop.
func (a *App) Run(ctx context.Context) error {
	a.Supervisor.Add(a.Server.Component())
	return a.Supervisor.Run(ctx)
}

func closerComponent(name string, closeFn func() error) Component {
	return Component{
		Name: name,
		Stop: func(context.Context) error { return closeFn() },
	}
}

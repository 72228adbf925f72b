package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                     sync.Once
	metricsRouter            *chi.Mux
	operationOutcomeCounter  *prometheus.CounterVec
	oracleLatency            *prometheus.HistogramVec
	custodyLatency           *prometheus.HistogramVec
	strategyLatency          *prometheus.HistogramVec
	dbLatency                *prometheus.HistogramVec
	queuePublishErrorCounter prometheus.Counter
	pendingEntitlementGauge  prometheus.Gauge
	salePhaseGauge           *prometheus.GaugeVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	operationOutcomeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operation_total",
			Help: "The total number of ledger operations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	oracleLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oracle_client_latency_seconds",
			Help:    "Histogram of price oracle request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	custodyLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "custody_client_latency_seconds",
			Help:    "Histogram of custody gateway request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	strategyLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "strategy_client_latency_seconds",
			Help:    "Histogram of yield strategy request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_latency_seconds",
			Help:    "Histogram of database query durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	// counter for events that failed to be pushed into the queue
	queuePublishErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_publish_error_count",
			Help: "The total number of errors when publishing ledger events to the queue",
		},
	)

	pendingEntitlementGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sale_pending_entitlement_tokens",
			Help: "Cumulative entitlement demand in whole issued-asset tokens.",
		},
	)

	salePhaseGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sale_phase",
			Help: "Current sale phase; the active phase label holds 1.",
		},
		[]string{"phase"},
	)

	prometheus.MustRegister(
		operationOutcomeCounter,
		oracleLatency,
		custodyLatency,
		strategyLatency,
		dbLatency,
		queuePublishErrorCounter,
		pendingEntitlementGauge,
		salePhaseGauge,
	)
}

func RecordOperationOutcome(operation string, failed bool) {
	outcome := Success
	if failed {
		outcome = Error
	}
	operationOutcomeCounter.WithLabelValues(operation, outcome.String()).Inc()
}

func RecordOracleLatency(d time.Duration, method string, failed bool) {
	oracleLatency.WithLabelValues(method, strconv.FormatBool(failed)).Observe(d.Seconds())
}

func RecordCustodyLatency(d time.Duration, method string, failed bool) {
	custodyLatency.WithLabelValues(method, strconv.FormatBool(failed)).Observe(d.Seconds())
}

func RecordStrategyLatency(d time.Duration, method string, failed bool) {
	strategyLatency.WithLabelValues(method, strconv.FormatBool(failed)).Observe(d.Seconds())
}

func RecordDbLatency(method string, d time.Duration, failed bool) {
	dbLatency.WithLabelValues(method, strconv.FormatBool(failed)).Observe(d.Seconds())
}

func RecordQueuePublishError() {
	queuePublishErrorCounter.Inc()
}

func SetPendingEntitlement(tokens float64) {
	pendingEntitlementGauge.Set(tokens)
}

// SetSalePhase marks the active phase; every other known phase is zeroed.
func SetSalePhase(active string, all []string) {
	for _, phase := range all {
		value := 0.0
		if phase == active {
			value = 1.0
		}
		salePhaseGauge.WithLabelValues(phase).Set(value)
	}
}

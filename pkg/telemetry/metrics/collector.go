package metrics

import (
	"net/http"
	"time"

	"autolife/adjudicator/pkg/claims"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "autolife"
	subsystem = "adjudicator"
)

// Collector registers and records all engine metrics. It satisfies the
// engine's MetricsRecorder interface and additionally tracks catalog
// reloads via the manager's OnReload hook.
type Collector struct {
	registry *prometheus.Registry

	// Decision outcomes by final status.
	decisionsTotal *prometheus.CounterVec

	// How many analysis rounds each claim took before a decision.
	decisionIterations prometheus.Histogram

	// Fraud assessments by bucketed risk level.
	fraudTotal *prometheus.CounterVec

	// Collaborator round-trips by provider and outcome.
	roundsTotal   *prometheus.CounterVec
	roundDuration *prometheus.HistogramVec
	errorsTotal   *prometheus.CounterVec

	// Catalog state.
	policiesLoaded prometheus.Gauge
	reloadsTotal   prometheus.Counter
}

// NewCollector creates a collector backed by the given registry. A nil
// registry gets a fresh private one; Handler serves whichever is used.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,

		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "decisions_total",
				Help:      "Total number of claim decisions by final status",
			},
			[]string{"status"},
		),

		decisionIterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "decision_iterations",
				Help:      "Number of analysis rounds taken per claim",
				Buckets:   []float64{1, 2, 3, 4, 5, 7, 10},
			},
		),

		fraudTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fraud_assessments_total",
				Help:      "Total fraud assessments by risk level",
			},
			[]string{"level"},
		),

		roundsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "collaborator_rounds_total",
				Help:      "Total collaborator round-trips by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),

		roundDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "collaborator_round_duration_seconds",
				Help:      "Duration of collaborator round-trips in seconds",
				// Collaborator latencies run well past typical API calls.
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"provider"},
		),

		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "collaborator_errors_total",
				Help:      "Total collaborator errors by provider and error type",
			},
			[]string{"provider", "type"},
		),

		policiesLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "catalog_policies",
				Help:      "Number of policies in the active catalog snapshot",
			},
		),

		reloadsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "catalog_reloads_total",
				Help:      "Total successful catalog reloads",
			},
		),
	}

	registry.MustRegister(
		c.decisionsTotal,
		c.decisionIterations,
		c.fraudTotal,
		c.roundsTotal,
		c.roundDuration,
		c.errorsTotal,
		c.policiesLoaded,
		c.reloadsTotal,
	)

	return c
}

// ObserveDecision records a finished claim: its final status and the
// number of analysis rounds it took.
func (c *Collector) ObserveDecision(status claims.ClaimStatus, iterations int) {
	c.decisionsTotal.WithLabelValues(string(status)).Inc()
	c.decisionIterations.Observe(float64(iterations))
}

// ObserveFraudAssessment counts a fraud assessment by risk level.
func (c *Collector) ObserveFraudAssessment(level claims.FraudRiskLevel) {
	c.fraudTotal.WithLabelValues(string(level)).Inc()
}

// ObserveCollaboratorRound records one provider round-trip.
func (c *Collector) ObserveCollaboratorRound(provider string, duration time.Duration, success bool) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	c.roundsTotal.WithLabelValues(provider, outcome).Inc()
	c.roundDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// ObserveCollaboratorError counts a classified collaborator error.
func (c *Collector) ObserveCollaboratorError(provider string, errorType string) {
	c.errorsTotal.WithLabelValues(provider, errorType).Inc()
}

// SetCatalogSize updates the policy count gauge. Wire it to the catalog
// manager's OnReload hook and call it once at startup.
func (c *Collector) SetCatalogSize(count int) {
	c.policiesLoaded.Set(float64(count))
}

// ObserveCatalogReload counts a successful reload and updates the gauge.
func (c *Collector) ObserveCatalogReload(count int) {
	c.reloadsTotal.Inc()
	c.policiesLoaded.Set(float64(count))
}

// Registry returns the backing Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an HTTP handler serving the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

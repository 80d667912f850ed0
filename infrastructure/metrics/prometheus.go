// ABOUTME: Prometheus implementation of interfaces.Metrics
// ABOUTME: Counts strategy attempts and extraction outcomes and times each strategy

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records extraction outcomes into a Prometheus registry
type Metrics struct {
	attempts    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	extractions *prometheus.CounterVec
}

// New registers the extraction collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rotter_strategy_attempts_total",
			Help: "Article fetch strategy attempts by strategy and outcome",
		}, []string{"strategy", "outcome"}),

		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rotter_strategy_duration_seconds",
			Help:    "Time spent in one fetch strategy attempt, including rate limit waits",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"strategy"}),

		extractions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rotter_extractions_total",
			Help: "Article extraction requests by final outcome",
		}, []string{"outcome"}),
	}
}

// ObserveStrategy implements interfaces.Metrics
func (m *Metrics) ObserveStrategy(strategy, outcome string, elapsed time.Duration) {
	m.attempts.WithLabelValues(strategy, outcome).Inc()
	m.latency.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// ObserveExtraction implements interfaces.Metrics
func (m *Metrics) ObserveExtraction(outcome string) {
	m.extractions.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Package metrics exposes Prometheus metrics for the generation pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ideagen"

// Metrics holds the pipeline collectors
type Metrics struct {
	StageTotal         *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the pipeline collectors, plus Go and process collectors, on
// a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the pipeline collectors on reg.
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		StageTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_stage_total",
			Help:      "Pipeline stage runs by outcome (generated or fallback)",
		}, []string{"stage", "outcome"}),
		GenerationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_generation_seconds",
			Help:      "Time spent in a pipeline stage including the provider call",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		}, []string{"stage"}),
		gatherer: gatherer,
	}
}

// ObserveStage records one finished stage.
func (m *Metrics) ObserveStage(stage, outcome string, elapsed time.Duration) {
	m.StageTotal.WithLabelValues(stage, outcome).Inc()
	m.GenerationDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the worker pool's Prometheus metrics. The document counters
// are handed to the orchestrator, which observes per-document outcomes.
type Metrics struct {
	RunsStarted        prometheus.Counter
	RunsCompleted      prometheus.Counter
	RunsFailed         prometheus.Counter
	RunSeconds         prometheus.Histogram
	JobsInFlight       prometheus.Gauge
	DocumentsProcessed prometheus.Counter
	DocumentsSkipped   prometheus.Counter
}

// DefaultMetrics registers against the default registerer.
func DefaultMetrics() *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer)
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RunsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "veridoc_runs_started_total",
			Help: "Total runs picked up by the worker pool",
		}),
		RunsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "veridoc_runs_completed_total",
			Help: "Total runs that reached COMPLETED",
		}),
		RunsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "veridoc_runs_failed_total",
			Help: "Total runs that reached FAILED",
		}),
		RunSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "veridoc_run_duration_seconds",
			Help:    "Wall-clock duration of one run execution",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}),
		JobsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "veridoc_runs_in_flight",
			Help: "Runs currently executing",
		}),
		DocumentsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "veridoc_documents_processed_total",
			Help: "Total documents that produced an extraction record",
		}),
		DocumentsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "veridoc_documents_skipped_total",
			Help: "Total documents skipped (wrong type, cost limit, or stage failure)",
		}),
	}
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog_seeder"

// Seed groups the metrics recorded by a seed run.
type Seed struct {
	// RecordsCreated counts persisted records by kind (user, article)
	RecordsCreated *prometheus.CounterVec

	// RunsTotal counts seed runs by status (success, failure)
	RunsTotal *prometheus.CounterVec

	// RunDuration measures wall time of a seed run in seconds
	RunDuration prometheus.Histogram

	// InsertDuration measures a single insert by kind
	InsertDuration *prometheus.HistogramVec

	// LastRunTimestamp is the Unix time the last run finished
	LastRunTimestamp prometheus.Gauge
}

// NewSeed creates the seed metrics and registers them with reg.
// It panics if the metrics are already registered with reg.
func NewSeed(reg prometheus.Registerer) *Seed {
	factory := promauto.With(reg)
	return &Seed{
		RecordsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_created_total",
				Help:      "Total number of records persisted by the seeder",
			},
			[]string{"kind"},
		),
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of seed runs",
			},
			[]string{"status"},
		),
		RunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Seed run duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
			},
		),
		InsertDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "insert_duration_seconds",
				Help:      "Single record insert duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"kind"},
		),
		LastRunTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time the last seed run finished",
			},
		),
	}
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// effects service.
type Metrics struct {
	CalculationsTotal   prometheus.Counter
	CalculationErrors   *prometheus.CounterVec // labels: reason={invalid_yield,bad_request,unknown_weapon,unknown_city,unknown_burst}
	CalculationDuration prometheus.Histogram

	// Result publishing metrics.
	ResultsPublished prometheus.Counter
	PublishErrors    prometheus.Counter
	PublisherEnabled prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CalculationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nuccalc",
			Name:      "calculations_total",
			Help:      "Total effects calculations served.",
		}),
		CalculationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nuccalc",
			Name:      "calculation_errors_total",
			Help:      "Rejected calculation requests by reason.",
		}, []string{"reason"}),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nuccalc",
			Name:      "calculation_duration_seconds",
			Help:      "Duration of a complete effects calculation.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		ResultsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nuccalc",
			Name:      "results_published_total",
			Help:      "Total results written to the Kafka results topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nuccalc",
			Name:      "publish_errors_total",
			Help:      "Total failed result publishes.",
		}),
		PublisherEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nuccalc",
			Name:      "publisher_enabled",
			Help:      "1 when result publishing is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.CalculationsTotal,
		m.CalculationErrors,
		m.CalculationDuration,
		m.ResultsPublished,
		m.PublishErrors,
		m.PublisherEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		CalculationsTotal:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "nuccalc", Name: "calculations_total"}),
		CalculationErrors:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "nuccalc", Name: "calculation_errors_total"}, []string{"reason"}),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "nuccalc", Name: "calculation_duration_seconds"}),
		ResultsPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "nuccalc", Name: "results_published_total"}),
		PublishErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "nuccalc", Name: "publish_errors_total"}),
		PublisherEnabled:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "nuccalc", Name: "publisher_enabled"}),
	}
}

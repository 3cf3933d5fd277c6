// Package metrics provides Prometheus metrics for textlens
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the analysis pipeline. It
// satisfies textlens.Recorder.
type Metrics struct {
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	StageDuration    *prometheus.HistogramVec
	InputRunes       prometheus.Histogram
	AnalysesInFlight prometheus.Gauge
}

// NewMetrics creates the metrics and registers them with reg. A nil reg
// registers with the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	m := &Metrics{}

	m.AnalysesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textlens_analyses_total",
			Help: "Total number of analyses by outcome",
		},
		[]string{"status"},
	)

	m.AnalysisDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textlens_analysis_duration_seconds",
			Help:    "Duration of complete analyses in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"status"},
	)

	m.StageDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textlens_stage_duration_seconds",
			Help:    "Duration of individual pipeline stages in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"stage"},
	)

	m.InputRunes = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "textlens_input_runes",
			Help:    "Size of analyzed inputs in characters",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8),
		},
	)

	m.AnalysesInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "textlens_analyses_in_flight",
			Help: "Number of analyses currently running",
		},
	)

	return m
}

// ObserveStage records the duration of one pipeline stage
func (m *Metrics) ObserveStage(stage string, elapsed time.Duration) {
	m.StageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// ObserveAnalysis records a finished analysis with its outcome
func (m *Metrics) ObserveAnalysis(status string, elapsed time.Duration, inputRunes int) {
	m.AnalysesTotal.WithLabelValues(status).Inc()
	m.AnalysisDuration.WithLabelValues(status).Observe(elapsed.Seconds())
	m.InputRunes.Observe(float64(inputRunes))
}

// AddInFlight adjusts the in-flight gauge
func (m *Metrics) AddInFlight(delta float64) {
	m.AnalysesInFlight.Add(delta)
}

// SPDX-License-Identifier: MIT
// Package: sublevel/batch
//
// metrics.go - Prometheus collectors for batch runs.

package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "sublevel"
	metricsSubsystem = "batch"

	resultOK    = "ok"
	resultError = "error"
)

// Metrics groups the batch collectors.
type Metrics struct {
	// SeriesTotal counts processed series. Labels: result (ok, error).
	SeriesTotal *prometheus.CounterVec
	// DiagramPoints observes the number of rows in each finalized diagram.
	DiagramPoints prometheus.Histogram
	// ComputeDuration observes per-series compute time in seconds.
	ComputeDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		SeriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "series_total",
			Help:      "Series processed by the batch runner, by result",
		}, []string{"result"}),
		DiagramPoints: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "diagram_points",
			Help:      "Rows per finalized persistence diagram",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		ComputeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "compute_duration_seconds",
			Help:      "Per-series diagram compute time in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
}

// observe records one series. Safe on a nil receiver.
func (m *Metrics) observe(points int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.SeriesTotal.WithLabelValues(resultError).Inc()
		return
	}
	m.SeriesTotal.WithLabelValues(resultOK).Inc()
	m.DiagramPoints.Observe(float64(points))
	m.ComputeDuration.Observe(elapsed.Seconds())
}

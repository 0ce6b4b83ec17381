// Package telemetry exposes Prometheus metrics and OpenTelemetry spans for
// the frame loop.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "panekit",
			Subsystem: "frame",
			Name:      "rendered_total",
			Help:      "Total number of frames rendered",
		},
	)

	FrameDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "panekit",
			Subsystem: "frame",
			Name:      "duration_seconds",
			Help:      "Time spent dispatching and drawing one frame",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10), // 0.5ms to ~250ms
		},
	)

	InputEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "panekit",
			Subsystem: "input",
			Name:      "events_total",
			Help:      "Input events dispatched, by kind",
		},
		[]string{"kind"},
	)

	PageSwitches = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "panekit",
			Subsystem: "page",
			Name:      "switches_total",
			Help:      "Total number of page switches",
		},
	)

	MenuActions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "panekit",
			Subsystem: "menu",
			Name:      "actions_total",
			Help:      "Menu handlers run",
		},
	)

	AlertsScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "panekit",
			Subsystem: "alert",
			Name:      "scheduled_total",
			Help:      "Total number of alerts scheduled",
		},
	)

	AlertsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "panekit",
			Subsystem: "alert",
			Name:      "pending",
			Help:      "Alerts waiting to be shown or still on screen",
		},
	)
)

// ObserveFrame records one rendered frame.
func ObserveFrame(took time.Duration) {
	FramesRendered.Inc()
	FrameDuration.Observe(took.Seconds())
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

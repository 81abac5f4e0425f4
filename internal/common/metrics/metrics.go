package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DemoRunsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_runs_completed_total",
			Help: "Total number of demo runs completed per agent",
		},
		[]string{"agent"},
	)

	DemoRunsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_runs_failed_total",
			Help: "Total number of demo runs that returned an error",
		},
		[]string{"agent", "error_code"},
	)

	DemoRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "demo_run_duration_seconds",
			Help:    "Duration of demo runs including simulated thinking time",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 0.7, 1, 2, 5},
		},
		[]string{"agent"},
	)

	DemoRunsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "demo_runs_active",
			Help: "Number of in-flight demo runs per agent",
		},
		[]string{"agent"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served, by route and status",
		},
		[]string{"route", "method", "status"},
	)
)

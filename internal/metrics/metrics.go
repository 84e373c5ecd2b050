package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seatemp_renders_total",
			Help: "Total dashboard renders by view",
		},
		[]string{"view"},
	)

	ChartRenderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seatemp_chart_render_seconds",
			Help:    "Chart rendering latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"chart", "format"},
	)

	ImpactsDetected = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "seatemp_impacts_detected",
			Help: "Number of impact messages produced by the most recent render",
		},
		[]string{"view"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seatemp_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		},
		[]string{"path", "status"},
	)

	HTTPRequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seatemp_http_request_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

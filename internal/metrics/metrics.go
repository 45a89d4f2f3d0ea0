package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment_orchestrator",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "payment_orchestrator",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets: []float64{
				0.005, 0.01, 0.025, 0.05, 0.1,
				0.25, 0.5, 1, 2.5, 5,
			},
		},
		[]string{"route", "status"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_signups_total",
			Help: "Total number of successful activity signups",
		},
		[]string{"activity"},
	)

	UnregistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_unregistrations_total",
			Help: "Total number of successful activity unregistrations",
		},
		[]string{"activity"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "path"},
	)
)

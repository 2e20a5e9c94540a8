package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeHTTPError = "http_error"
	outcomeTransport = "transport_error"
	outcomeDecode    = "decode_error"
	outcomeEncode    = "encode_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apiclient",
			Name:      "requests_total",
			Help:      "API requests by endpoint path and outcome.",
		},
		[]string{"path", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "apiclient",
			Name:      "request_duration_seconds",
			Help:      "Wall time of API requests, including body decoding.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

func observe(path, outcome string, took time.Duration) {
	requestsTotal.WithLabelValues(path, outcome).Inc()
	requestDuration.WithLabelValues(path).Observe(took.Seconds())
}

// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ChatbotRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_requests_total",
			Help: "Total number of chatbot requests by routing mode",
		},
		[]string{"mode"},
	)

	ChatbotFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_failures_total",
			Help: "Total number of chatbot requests answered with an error reply",
		},
		[]string{"mode"},
	)

	ExternalCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_call_duration_seconds",
			Help:    "Duration of calls to model providers in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
		[]string{"operation"},
	)

	ExternalCallFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_call_failures_total",
			Help: "Total number of failed calls to model providers",
		},
		[]string{"operation"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)
)

// ObserveExternalCall records the latency of one provider call and counts it
// as failed when err is non-nil.
func ObserveExternalCall(operation string, start time.Time, err error) {
	ExternalCallDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		ExternalCallFailures.WithLabelValues(operation).Inc()
	}
}

// ObserveHTTPRequest counts one served request
func ObserveHTTPRequest(method, route string, status int) {
	HTTPRequests.WithLabelValues(method, route, StatusClass(status)).Inc()
}

// StatusClass buckets an HTTP status code as "2xx", "4xx" and so on
func StatusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500 && code < 600:
		return "5xx"
	default:
		return "0"
	}
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// Package prometheus records askd metrics with the Prometheus client library.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Provider call outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Question results.
const (
	ResultAnswered = "answered"
	ResultInvalid  = "invalid"
	ResultFailed   = "failed"
)

// Metrics holds the collectors shared by the decorators in this package.
type Metrics struct {
	ProviderRequests *prometheus.CounterVec
	ProviderDuration *prometheus.HistogramVec
	Questions        *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ProviderRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "askd_provider_requests_total",
				Help: "Total number of provider calls by outcome",
			},
			[]string{"model", "outcome"},
		),
		ProviderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "askd_provider_request_duration_seconds",
				Help:    "Duration of provider calls",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
			[]string{"model"},
		),
		Questions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "askd_questions_total",
				Help: "Total number of questions by result",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(m.ProviderRequests, m.ProviderDuration, m.Questions)
	return m
}

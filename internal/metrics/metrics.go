// Package metrics exposes Prometheus collectors for assessments, reports
// and the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sleepcheck"

// Assessment outcomes.
const (
	OutcomeLowRisk    = "low_risk"
	OutcomeHighRisk   = "high_risk"
	OutcomeValidation = "validation_error"
	OutcomePrediction = "prediction_error"
)

// Metrics holds every collector. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	assessments    *prometheus.CounterVec
	assessDuration prometheus.Histogram
	labels         *prometheus.CounterVec
	reports        *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// MustNewMetrics creates the collectors and registers them with reg,
// panicking on registration errors. Tests pass a fresh registry.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Evaluations by outcome.",
		}, []string{"outcome"}),
		assessDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assessment_duration_seconds",
			Help:      "Time from raw inputs to labels.",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
		labels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disorder_labels_total",
			Help:      "Disorder labels suggested by the rule engine.",
		}, []string{"label"}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Report exports by status.",
		}, []string{"status"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.assessments, m.assessDuration, m.labels, m.reports, m.httpRequests, m.httpDuration)
	return m
}

// ObserveAssessment records one evaluation and the labels it produced.
func (m *Metrics) ObserveAssessment(outcome string, d time.Duration, labels []string) {
	if m == nil {
		return
	}
	m.assessments.WithLabelValues(outcome).Inc()
	m.assessDuration.Observe(d.Seconds())
	for _, l := range labels {
		m.labels.WithLabelValues(l).Inc()
	}
}

// IncReport counts a report export attempt.
func (m *Metrics) IncReport(ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "error"
	}
	m.reports.WithLabelValues(status).Inc()
}

// ObserveHTTP records a served request.
func (m *Metrics) ObserveHTTP(method, route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

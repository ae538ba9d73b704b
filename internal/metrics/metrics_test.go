package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRecord(t *testing.T) {
	m := MustNewMetrics(prometheus.NewRegistry())

	m.ObserveAssessment(OutcomeHighRisk, time.Millisecond, []string{"Insomnia", "Narcolepsy"})
	m.ObserveAssessment(OutcomeLowRisk, time.Millisecond, nil)
	m.ObserveAssessment(OutcomeHighRisk, time.Millisecond, []string{"Insomnia"})
	m.IncReport(true)
	m.IncReport(false)
	m.ObserveHTTP("POST", "/api/v1/assessments", 200, time.Millisecond)

	if got := testutil.ToFloat64(m.assessments.WithLabelValues(OutcomeHighRisk)); got != 2 {
		t.Errorf("high risk = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.labels.WithLabelValues("Insomnia")); got != 2 {
		t.Errorf("insomnia labels = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.reports.WithLabelValues("error")); got != 1 {
		t.Errorf("report errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/v1/assessments", "200")); got != 1 {
		t.Errorf("http requests = %v, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveAssessment(OutcomeLowRisk, time.Second, []string{"x"})
	m.IncReport(true)
	m.ObserveHTTP("GET", "/healthz", 200, time.Second)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustNewMetrics(reg)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	MustNewMetrics(reg)
}
